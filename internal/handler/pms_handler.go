package handler

import (
	"net/http"
	"strconv"

	"github.com/ar-vacations/pms-gateway/internal/application"
	"github.com/ar-vacations/pms-gateway/internal/config"
	"github.com/ar-vacations/pms-gateway/internal/domain/pms"
	"github.com/ar-vacations/pms-gateway/internal/response"
	"github.com/gin-gonic/gin"
)

// Query defaults mirror the marketing site's default search window.
const (
	defaultStart  = "2025-11-01"
	defaultEnd    = "2025-11-05"
	defaultGuests = 2
)

// PMSHandler handles HTTP requests for PMS-backed data.
type PMSHandler struct {
	service  *application.PMSService
	mockMode bool
}

// NewPMSHandler creates a new PMSHandler. mockMode marks responses that
// carry fixture data rather than upstream data.
func NewPMSHandler(service *application.PMSService, cfg *config.ServiceConfig) *PMSHandler {
	return &PMSHandler{
		service:  service,
		mockMode: (cfg.PMS.UseMock || cfg.PMS.APIKey == "") && !cfg.IsProduction(),
	}
}

// RegisterRoutes registers all PMS routes on the given router group.
func (h *PMSHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/pms")
	{
		api.GET("/units", h.ListUnits)
		api.GET("/availability", h.Availability)
		api.GET("/rates", h.Rates)
		api.GET("/account", h.Account)
	}

	r.GET("/go/book", h.RedirectToBooking)
}

// ListUnits handles GET /api/pms/units.
func (h *PMSHandler) ListUnits(c *gin.Context) {
	units, err := h.service.ListUnits(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKMock(c, h.mockMode, gin.H{"units": units})
}

// Availability handles GET /api/pms/availability.
func (h *PMSHandler) Availability(c *gin.Context) {
	guests, err := strconv.Atoi(c.DefaultQuery("guests", strconv.Itoa(defaultGuests)))
	if err != nil || guests < 1 {
		response.BadRequest(c, "guests must be a positive integer")
		return
	}

	req := application.AvailabilityRequest{
		Start:   c.DefaultQuery("start", defaultStart),
		End:     c.DefaultQuery("end", defaultEnd),
		Guests:  guests,
		UnitIDs: config.SplitIDList(c.Query("units")),
	}

	result, err := h.service.Availability(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKMock(c, h.mockMode, result)
}

// Rates handles GET /api/pms/rates.
func (h *PMSHandler) Rates(c *gin.Context) {
	start := c.DefaultQuery("start", defaultStart)
	end := c.DefaultQuery("end", defaultEnd)

	rates, err := h.service.Rates(c.Request.Context(), start, end, config.SplitIDList(c.Query("units")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKMock(c, h.mockMode, rates)
}

// Account handles GET /api/pms/account.
func (h *PMSHandler) Account(c *gin.Context) {
	account, err := h.service.Account(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, account)
}

// RedirectToBooking handles GET /go/book: it deep-links the visitor
// into the external booking engine. The link is best effort, so this
// endpoint always redirects, even with no unit parameter.
func (h *PMSHandler) RedirectToBooking(c *gin.Context) {
	var params *pms.LinkParams
	start, end := c.Query("start"), c.Query("end")
	if start != "" || end != "" {
		params = &pms.LinkParams{Start: start, End: end}
	}

	target := h.service.BookingLink(c.Query("unit"), params)
	c.Redirect(http.StatusFound, target)
}
