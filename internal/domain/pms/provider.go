package pms

import "context"

// Provider is the capability set every PMS integration must expose.
// There is a single implementation today (Smoobu); the interface exists
// so a second provider or per-tenant selection can be introduced behind
// the factory without touching callers.
type Provider interface {
	// ListUnits returns every bookable unit known to the backing PMS.
	ListUnits(ctx context.Context) ([]Unit, error)

	// Availability returns one quote per requested unit. Units the
	// upstream pricing map does not know are silently absent from the
	// result rather than reported as unavailable.
	Availability(ctx context.Context, query AvailabilityQuery) (*Availability, error)

	// Rates returns the per-day rate table for the given units and date
	// range.
	Rates(ctx context.Context, start, end string, unitIDs []string) (RateTable, error)

	// Account returns the PMS account behind the configured credentials.
	Account(ctx context.Context) (*Account, error)

	// BookingLink builds a best-effort deep link into the external
	// booking engine. It never fails: with an empty unitID it returns
	// the bare booking base URL. It must not validate which query
	// parameters the external system understands.
	BookingLink(unitID string, params *LinkParams) string
}
