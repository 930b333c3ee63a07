package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// CanonicalHost enforces the canonical host, https, and no trailing
// slash with a 308 redirect, preserving the query string. It applies
// only in production and never to API, health, or metrics paths, so
// deep-linked availability calls are not bounced. The desired host
// comes from SITE_URL, making it configurable per deployment; with no
// SITE_URL nothing is enforced.
func CanonicalHost(siteURL string, isProduction bool) gin.HandlerFunc {
	desired, err := url.Parse(siteURL)
	if siteURL == "" || err != nil || desired.Host == "" {
		desired = nil
	}

	return func(c *gin.Context) {
		if !isProduction || desired == nil {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || path == "/healthz" || path == "/metrics" {
			c.Next()
			return
		}

		currentHost := c.GetHeader("X-Forwarded-Host")
		if currentHost == "" {
			currentHost = c.Request.Host
		}
		if strings.HasPrefix(currentHost, "localhost") {
			c.Next()
			return
		}

		currentProto := c.GetHeader("X-Forwarded-Proto")
		if currentProto == "" {
			if c.Request.TLS != nil {
				currentProto = "https"
			} else {
				currentProto = "http"
			}
		}

		normalizedPath := path
		if normalizedPath != "/" && strings.HasSuffix(normalizedPath, "/") {
			normalizedPath = strings.TrimSuffix(normalizedPath, "/")
		}

		needsHostFix := currentHost != desired.Host
		needsHTTPSFix := currentProto != "https" && desired.Scheme == "https"
		needsSlashFix := normalizedPath != path

		if !needsHostFix && !needsHTTPSFix && !needsSlashFix {
			c.Next()
			return
		}

		redirect := url.URL{
			Scheme:   desired.Scheme,
			Host:     desired.Host,
			Path:     normalizedPath,
			RawQuery: c.Request.URL.RawQuery,
		}
		if redirect.Scheme == "" {
			redirect.Scheme = "https"
		}
		c.Redirect(http.StatusPermanentRedirect, redirect.String())
		c.Abort()
	}
}
