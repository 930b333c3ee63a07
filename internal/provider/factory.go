package provider

import (
	"context"

	"github.com/ar-vacations/pms-gateway/internal/config"
	"github.com/ar-vacations/pms-gateway/internal/domain/pms"
	"github.com/ar-vacations/pms-gateway/internal/provider/smoobu"
	"go.uber.org/zap"
)

// New is the single construction point for PMS providers. The provider
// selection is fixed to Smoobu today; this seam is where a second
// provider or per-tenant routing would plug in. Callers must never
// construct an adapter directly.
func New(cfg *config.ServiceConfig, logger *zap.Logger) pms.Provider {
	gate := NewGate(cfg)

	if err := gate.Check(); err != nil {
		logger.Error("provider misconfigured, all calls will fail", zap.Error(err))
		return &misconfigured{err: err, bookingBase: cfg.PMS.BookingBase}
	}

	if gate.MockEnabled() {
		logger.Info("serving mock PMS data (USE_MOCK=1)")
		return NewMock(cfg.PMS.BookingBase)
	}

	real := smoobu.New(cfg.PMS, logger)

	// A keyless dev deployment still gets the unit list and rate table
	// as fixtures so the site renders without credentials. Availability
	// and account always demand real credentials, and production never
	// sees fixtures at all.
	if cfg.PMS.APIKey == "" && !cfg.IsProduction() {
		logger.Info("no API key configured, serving mock units and rates")
		return &keylessDev{mock: NewMock(cfg.PMS.BookingBase), real: real}
	}

	return real
}

// keylessDev answers catalog-shaped reads (units, rates) from fixtures
// while credentialed operations keep failing with a config error.
type keylessDev struct {
	mock *Mock
	real *smoobu.Client
}

func (k *keylessDev) ListUnits(ctx context.Context) ([]pms.Unit, error) {
	return k.mock.ListUnits(ctx)
}

func (k *keylessDev) Availability(ctx context.Context, query pms.AvailabilityQuery) (*pms.Availability, error) {
	return k.real.Availability(ctx, query)
}

func (k *keylessDev) Rates(ctx context.Context, start, end string, unitIDs []string) (pms.RateTable, error) {
	return k.mock.Rates(ctx, start, end, unitIDs)
}

func (k *keylessDev) Account(ctx context.Context) (*pms.Account, error) {
	return k.real.Account(ctx)
}

func (k *keylessDev) BookingLink(unitID string, params *pms.LinkParams) string {
	return k.mock.BookingLink(unitID, params)
}

// misconfigured answers every capability call with the guard error so a
// bad deployment fails loudly instead of serving fabricated data.
// BookingLink cannot fail by contract and returns the bare base URL.
type misconfigured struct {
	err         error
	bookingBase string
}

func (m *misconfigured) ListUnits(ctx context.Context) ([]pms.Unit, error) {
	return nil, m.err
}

func (m *misconfigured) Availability(ctx context.Context, query pms.AvailabilityQuery) (*pms.Availability, error) {
	return nil, m.err
}

func (m *misconfigured) Rates(ctx context.Context, start, end string, unitIDs []string) (pms.RateTable, error) {
	return nil, m.err
}

func (m *misconfigured) Account(ctx context.Context) (*pms.Account, error) {
	return nil, m.err
}

func (m *misconfigured) BookingLink(unitID string, params *pms.LinkParams) string {
	return m.bookingBase
}
