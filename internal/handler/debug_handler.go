package handler

import (
	"net/http"

	"github.com/ar-vacations/pms-gateway/internal/config"
	"github.com/gin-gonic/gin"
)

// DebugHandler exposes non-secret configuration introspection so a
// deployment's mock/credential state can be checked without log access.
// Secrets themselves are never echoed, only their presence.
type DebugHandler struct {
	cfg *config.ServiceConfig
}

// NewDebugHandler creates a new DebugHandler.
func NewDebugHandler(cfg *config.ServiceConfig) *DebugHandler {
	return &DebugHandler{cfg: cfg}
}

// RegisterRoutes registers debug routes on the given router group.
func (h *DebugHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/debug/config", h.Config)
}

// Config handles GET /api/debug/config.
func (h *DebugHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"appEnv":        h.cfg.AppEnv,
		"useMock":       h.cfg.PMS.UseMock,
		"hasApiKey":     h.cfg.PMS.APIKey != "",
		"hasCustomerId": h.cfg.PMS.CustomerID != "",
	})
}
