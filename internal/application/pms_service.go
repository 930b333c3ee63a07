package application

import (
	"context"

	"github.com/ar-vacations/pms-gateway/internal/domain/pms"
	"github.com/ar-vacations/pms-gateway/internal/provider"
	"go.uber.org/zap"
)

// UnitDTO is the response representation of a bookable unit.
type UnitDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	BookingURL string `json:"bookingUrl,omitempty"`
}

// AvailabilityRequest holds the inbound availability query.
type AvailabilityRequest struct {
	Start   string
	End     string
	Guests  int
	UnitIDs []string
}

// AvailabilityDTO is the response representation of an availability
// lookup, echoing the effective query parameters.
type AvailabilityDTO struct {
	Currency string      `json:"currency"`
	Quotes   []pms.Quote `json:"quotes"`
	Params   ParamsDTO   `json:"params"`
}

// ParamsDTO echoes the query the quotes were computed for.
type ParamsDTO struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Guests int    `json:"guests"`
}

// PMSService is the application service orchestrating PMS use cases:
// it resolves unit IDs, delegates to the provider obtained from the
// factory, and exposes DTOs to the HTTP layer.
type PMSService struct {
	provider pms.Provider
	resolver *provider.Resolver
	logger   *zap.Logger
}

// NewPMSService creates a new PMSService.
func NewPMSService(p pms.Provider, resolver *provider.Resolver, logger *zap.Logger) *PMSService {
	return &PMSService{
		provider: p,
		resolver: resolver,
		logger:   logger,
	}
}

// ListUnits returns every bookable unit with its booking deep link.
func (s *PMSService) ListUnits(ctx context.Context) ([]UnitDTO, error) {
	units, err := s.provider.ListUnits(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]UnitDTO, len(units))
	for i, u := range units {
		dtos[i] = UnitDTO{
			ID:         u.ID,
			Name:       u.Name,
			BookingURL: s.provider.BookingLink(u.ID, nil),
		}
	}
	return dtos, nil
}

// Availability resolves the unit-ID set and returns normalized quotes.
func (s *PMSService) Availability(ctx context.Context, req AvailabilityRequest) (*AvailabilityDTO, error) {
	ids, err := s.resolver.Resolve(ctx, req.UnitIDs)
	if err != nil {
		return nil, err
	}

	result, err := s.provider.Availability(ctx, pms.AvailabilityQuery{
		Start:   req.Start,
		End:     req.End,
		Guests:  req.Guests,
		UnitIDs: ids,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("availability computed",
		zap.Int("requested_units", len(ids)),
		zap.Int("quotes", len(result.Quotes)),
		zap.String("currency", result.Currency),
	)

	return &AvailabilityDTO{
		Currency: result.Currency,
		Quotes:   result.Quotes,
		Params:   ParamsDTO{Start: req.Start, End: req.End, Guests: req.Guests},
	}, nil
}

// Rates resolves the unit-ID set and returns the daily rate table.
func (s *PMSService) Rates(ctx context.Context, start, end string, unitIDs []string) (pms.RateTable, error) {
	ids, err := s.resolver.Resolve(ctx, unitIDs)
	if err != nil {
		return nil, err
	}
	return s.provider.Rates(ctx, start, end, ids)
}

// Account returns the PMS account behind the configured credentials.
func (s *PMSService) Account(ctx context.Context) (*pms.Account, error) {
	return s.provider.Account(ctx)
}

// BookingLink builds the external booking deep link for a unit.
func (s *PMSService) BookingLink(unitID string, params *pms.LinkParams) string {
	return s.provider.BookingLink(unitID, params)
}
