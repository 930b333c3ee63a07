package provider

import (
	"context"
	"testing"

	"github.com/ar-vacations/pms-gateway/internal/domain"
	"github.com/ar-vacations/pms-gateway/internal/domain/pms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// listOnlyProvider is a fake provider that records ListUnits calls.
type listOnlyProvider struct {
	units     []pms.Unit
	err       error
	listCalls int
}

func (p *listOnlyProvider) ListUnits(ctx context.Context) ([]pms.Unit, error) {
	p.listCalls++
	return p.units, p.err
}

func (p *listOnlyProvider) Availability(ctx context.Context, query pms.AvailabilityQuery) (*pms.Availability, error) {
	return &pms.Availability{Currency: "USD"}, nil
}

func (p *listOnlyProvider) Rates(ctx context.Context, start, end string, unitIDs []string) (pms.RateTable, error) {
	return pms.RateTable{}, nil
}

func (p *listOnlyProvider) Account(ctx context.Context) (*pms.Account, error) {
	return &pms.Account{}, nil
}

func (p *listOnlyProvider) BookingLink(unitID string, params *pms.LinkParams) string {
	return ""
}

func TestResolver_Precedence(t *testing.T) {
	upstream := []pms.Unit{{ID: "D"}, {ID: "E"}}

	tests := []struct {
		name      string
		callerIDs []string
		staticIDs []string
		want      []string
	}{
		{"caller ids win", []string{"A"}, []string{"B", "C"}, []string{"A"}},
		{"static ids next", nil, []string{"B", "C"}, []string{"B", "C"}},
		{"upstream units last", nil, nil, []string{"D", "E"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &listOnlyProvider{units: upstream}
			r := NewResolver(tt.staticIDs, NewMemoryIDCache(), fake, zap.NewNop())

			got, err := r.Resolve(context.Background(), tt.callerIDs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Deterministic: same inputs, same output.
			again, err := r.Resolve(context.Background(), tt.callerIDs)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestResolver_MemoAvoidsRepeatListCalls(t *testing.T) {
	fake := &listOnlyProvider{units: []pms.Unit{{ID: "D"}, {ID: "E"}}}
	r := NewResolver(nil, NewMemoryIDCache(), fake, zap.NewNop())

	first, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.listCalls, "memo should absorb the second resolution")
}

func TestResolver_LosingTheMemoOnlyCostsACall(t *testing.T) {
	fake := &listOnlyProvider{units: []pms.Unit{{ID: "D"}}}
	r := NewResolver(nil, NewMemoryIDCache(), fake, zap.NewNop())

	_, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)

	// Fresh cache simulates the memo being lost.
	r2 := NewResolver(nil, NewMemoryIDCache(), fake, zap.NewNop())
	got, err := r2.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, got)
	assert.Equal(t, 2, fake.listCalls)
}

func TestResolver_DropsEmptyUpstreamIDs(t *testing.T) {
	fake := &listOnlyProvider{units: []pms.Unit{{ID: ""}, {ID: "D"}}}
	r := NewResolver(nil, NewMemoryIDCache(), fake, zap.NewNop())

	got, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, got)
}

func TestResolver_PropagatesListError(t *testing.T) {
	fake := &listOnlyProvider{err: domain.NewUpstreamError("smoobu request failed", 500, "boom")}
	r := NewResolver(nil, NewMemoryIDCache(), fake, zap.NewNop())

	_, err := r.Resolve(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
}

func TestMemoryIDCache(t *testing.T) {
	c := NewMemoryIDCache()
	ctx := context.Background()

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	c.Set(ctx, []string{"A", "B"})
	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, got)

	// The cache hands out copies; mutating one must not poison it.
	got[0] = "mutated"
	again, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, again)

	// Empty sets are not memoized.
	c.Set(ctx, nil)
	again, ok = c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, again)
}
