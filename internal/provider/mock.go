package provider

import (
	"context"

	"github.com/ar-vacations/pms-gateway/internal/domain/pms"
)

// Mock serves fixed sample data so the site can be developed without
// PMS credentials. It is reachable only outside production; the gate
// rejects it everywhere else.
type Mock struct {
	bookingBase string
}

// NewMock creates the mock provider.
func NewMock(bookingBase string) *Mock {
	return &Mock{bookingBase: bookingBase}
}

// ListUnits returns the fixed sample units.
func (m *Mock) ListUnits(ctx context.Context) ([]pms.Unit, error) {
	return []pms.Unit{
		{ID: "2113656", Name: "ALDEA 104 2"},
		{ID: "2254116", Name: "ALDEA 111"},
		{ID: "2646938", Name: "ALDEA 121"},
	}, nil
}

// Availability returns the fixed sample quotes regardless of the query.
func (m *Mock) Availability(ctx context.Context, query pms.AvailabilityQuery) (*pms.Availability, error) {
	return &pms.Availability{
		Currency: "USD",
		Quotes: []pms.Quote{
			{UnitID: "2113656", Available: true, Total: 250},
			{UnitID: "2254116", Available: false, Total: 0},
			{UnitID: "2646938", Available: true, Total: 150},
		},
	}, nil
}

// Rates returns a fixed sample rate table.
func (m *Mock) Rates(ctx context.Context, start, end string, unitIDs []string) (pms.RateTable, error) {
	return pms.RateTable{
		"2113656": {
			"2025-11-01": {Price: 120, Available: 1, MinLengthOfStay: 2},
			"2025-11-02": {Price: 130, Available: 1, MinLengthOfStay: 2},
		},
		"2254116": {
			"2025-11-01": {Price: 95, Available: 0, MinLengthOfStay: 3},
			"2025-11-02": {Price: 110, Available: 1, MinLengthOfStay: 3},
		},
		"2646938": {
			"2025-11-01": {Price: 150, Available: 1, MinLengthOfStay: 2},
		},
	}, nil
}

// Account returns a placeholder account.
func (m *Mock) Account(ctx context.Context) (*pms.Account, error) {
	return &pms.Account{ID: 0, Name: "Mock Account"}, nil
}

// BookingLink builds deep links exactly like the real adapter.
func (m *Mock) BookingLink(unitID string, params *pms.LinkParams) string {
	return pms.BuildBookingLink(m.bookingBase, unitID, params)
}
