package handler

import (
	"github.com/ar-vacations/pms-gateway/internal/catalog"
	"github.com/ar-vacations/pms-gateway/internal/response"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static marketing catalog.
type CatalogHandler struct {
	store *catalog.Store
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// RegisterRoutes registers catalog routes on the given router group.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/catalog/properties", h.ListProperties)
}

// ListProperties handles GET /api/catalog/properties.
func (h *CatalogHandler) ListProperties(c *gin.Context) {
	properties, err := h.store.Properties()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"properties": properties})
}
