package provider

import (
	"github.com/ar-vacations/pms-gateway/internal/config"
	"github.com/ar-vacations/pms-gateway/internal/domain"
)

// Gate is the mock/real policy evaluated before any upstream call.
type Gate struct {
	useMock      bool
	isProduction bool
}

// NewGate derives the gate from the startup configuration.
func NewGate(cfg *config.ServiceConfig) Gate {
	return Gate{
		useMock:      cfg.PMS.UseMock,
		isProduction: cfg.IsProduction(),
	}
}

// Check enforces the safety invariant: mock data must never be served
// from a production deployment. When both flags are set, every
// request-handling path fails fast with a configuration error.
func (g Gate) Check() error {
	if g.isProduction && g.useMock {
		return domain.NewConfigError("mocks disabled in production (USE_MOCK=1)")
	}
	return nil
}

// MockEnabled reports whether fixed sample data should answer requests
// instead of the real adapter.
func (g Gate) MockEnabled() bool {
	return g.useMock
}
