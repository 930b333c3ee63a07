package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonicalRouter(siteURL string, isProduction bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// The canonical middleware owns slash normalization.
	r.RedirectTrailingSlash = false
	r.Use(CanonicalHost(siteURL, isProduction))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "home") })
	r.GET("/propiedades", func(c *gin.Context) { c.String(http.StatusOK, "list") })
	r.GET("/api/pms/units", func(c *gin.Context) { c.String(http.StatusOK, "units") })
	return r
}

func serveCanonical(r *gin.Engine, host, proto, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = host
	if proto != "" {
		req.Header.Set("X-Forwarded-Proto", proto)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCanonicalHost_RedirectsToCanonical(t *testing.T) {
	r := canonicalRouter("https://www.arvacations.com", true)

	w := serveCanonical(r, "arvacations.com", "https", "/propiedades")
	require.Equal(t, http.StatusPermanentRedirect, w.Code)
	assert.Equal(t, "https://www.arvacations.com/propiedades", w.Header().Get("Location"))
}

func TestCanonicalHost_UpgradesToHTTPS(t *testing.T) {
	r := canonicalRouter("https://www.arvacations.com", true)

	w := serveCanonical(r, "www.arvacations.com", "http", "/propiedades")
	require.Equal(t, http.StatusPermanentRedirect, w.Code)
	assert.Equal(t, "https://www.arvacations.com/propiedades", w.Header().Get("Location"))
}

func TestCanonicalHost_StripsTrailingSlash(t *testing.T) {
	r := canonicalRouter("https://www.arvacations.com", true)

	w := serveCanonical(r, "www.arvacations.com", "https", "/propiedades/?start=2025-11-01")
	require.Equal(t, http.StatusPermanentRedirect, w.Code)
	assert.Equal(t, "https://www.arvacations.com/propiedades?start=2025-11-01", w.Header().Get("Location"))
}

func TestCanonicalHost_NoRedirectWhenCanonical(t *testing.T) {
	r := canonicalRouter("https://www.arvacations.com", true)

	w := serveCanonical(r, "www.arvacations.com", "https", "/propiedades")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCanonicalHost_SkipsAPIAndDev(t *testing.T) {
	// API paths are never bounced, even off-host.
	r := canonicalRouter("https://www.arvacations.com", true)
	w := serveCanonical(r, "arvacations.com", "https", "/api/pms/units")
	assert.Equal(t, http.StatusOK, w.Code)

	// Outside production nothing is enforced.
	r = canonicalRouter("https://www.arvacations.com", false)
	w = serveCanonical(r, "arvacations.com", "http", "/propiedades")
	assert.Equal(t, http.StatusOK, w.Code)

	// localhost is always left alone.
	r = canonicalRouter("https://www.arvacations.com", true)
	w = serveCanonical(r, "localhost:8080", "http", "/propiedades")
	assert.Equal(t, http.StatusOK, w.Code)

	// No SITE_URL means nothing to enforce.
	r = canonicalRouter("", true)
	w = serveCanonical(r, "whatever.example.com", "http", "/propiedades")
	assert.Equal(t, http.StatusOK, w.Code)
}
