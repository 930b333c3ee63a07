package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler answers liveness probes.
type Handler struct {
	service string
}

// NewHandler creates a health handler for the named service.
func NewHandler(service string) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health route on the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Healthz)
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.service})
}
