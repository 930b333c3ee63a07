package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default upstream host. The deployment talks to a single fixed PMS;
// the override exists so tests can point the adapter at a fake server.
const defaultPMSBaseURL = "https://login.smoobu.com"

// PMSConfig holds everything the provider adapter needs. It is built
// once at startup and injected; business logic never reads the
// environment directly.
type PMSConfig struct {
	APIKey      string
	BaseURL     string
	CustomerID  string
	BookingBase string
	UnitIDs     []string
	UseMock     bool
	Timeout     time.Duration
}

// ServiceConfig holds all configuration for the PMS gateway.
type ServiceConfig struct {
	Port        string
	AppEnv      string
	SiteURL     string
	CatalogPath string
	RedisAddr   string
	PMS         PMSConfig
}

// IsProduction reports whether the process runs with the production
// environment marker.
func (c *ServiceConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from environment variables.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CATALOG_PATH", "data/catalog.json")
	v.SetDefault("SMOOBU_BASE_URL", defaultPMSBaseURL)
	v.SetDefault("SMOOBU_BOOKING_EXTERNAL_URL", "#")
	v.SetDefault("PMS_TIMEOUT", "10s")

	port := v.GetString("PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:        port,
		AppEnv:      v.GetString("APP_ENV"),
		SiteURL:     v.GetString("SITE_URL"),
		CatalogPath: v.GetString("CATALOG_PATH"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		PMS: PMSConfig{
			APIKey:      v.GetString("SMOOBU_API_KEY"),
			BaseURL:     v.GetString("SMOOBU_BASE_URL"),
			CustomerID:  strings.TrimSpace(v.GetString("SMOOBU_CUSTOMER_ID")),
			BookingBase: v.GetString("SMOOBU_BOOKING_EXTERNAL_URL"),
			UnitIDs:     SplitIDList(v.GetString("SMOOBU_APARTMENT_IDS")),
			UseMock:     strings.TrimSpace(v.GetString("USE_MOCK")) == "1",
			Timeout:     v.GetDuration("PMS_TIMEOUT"),
		},
	}, nil
}

// SplitIDList parses a comma-separated ID list, trimming whitespace and
// discarding empty entries.
func SplitIDList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
