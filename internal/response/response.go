package response

import (
	"errors"
	"net/http"

	"github.com/ar-vacations/pms-gateway/internal/domain"
	"github.com/gin-gonic/gin"
)

// The JSON envelope is {ok, data} on success and {ok:false, error} on
// failure; upstream failures additionally carry the upstream status and
// raw body for diagnostics.

// OK writes a 200 success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

// OKMock writes a success envelope flagged as mock or real data.
func OKMock(c *gin.Context, mock bool, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "mock": mock, "data": data})
}

// BadRequest writes a 400 failure envelope.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": message})
}

// Error maps a domain error onto the failure envelope. Upstream errors
// propagate the upstream status code; configuration errors are server
// faults and must never be silently replaced with data.
func Error(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	switch de.Kind {
	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": de.Message})
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": de.Message})
	case domain.KindUpstream:
		status := de.UpstreamStatus
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"ok":     false,
			"error":  de.Message,
			"status": de.UpstreamStatus,
			"body":   de.UpstreamBody,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": de.Message})
	}
}
