package provider

import (
	"context"

	"github.com/ar-vacations/pms-gateway/internal/domain/pms"
	"go.uber.org/zap"
)

// Resolver decides which unit IDs an availability query covers when the
// caller has not fully specified them. Precedence, first non-empty
// wins: caller-supplied IDs, then the statically configured list, then
// the advisory memo, then a full ListUnits round trip. Given the same
// inputs the same set is always produced.
type Resolver struct {
	staticIDs []string
	cache     IDCache
	provider  pms.Provider
	logger    *zap.Logger
}

// NewResolver creates a Resolver. The cache is an explicit capability
// so tests can inject a fresh one and avoid cross-test leakage.
func NewResolver(staticIDs []string, cache IDCache, p pms.Provider, logger *zap.Logger) *Resolver {
	return &Resolver{
		staticIDs: staticIDs,
		cache:     cache,
		provider:  p,
		logger:    logger,
	}
}

// Resolve returns the unit-ID set to query.
func (r *Resolver) Resolve(ctx context.Context, callerIDs []string) ([]string, error) {
	if len(callerIDs) > 0 {
		return callerIDs, nil
	}

	if len(r.staticIDs) > 0 {
		return r.staticIDs, nil
	}

	if ids, ok := r.cache.Get(ctx); ok {
		return ids, nil
	}

	units, err := r.provider.ListUnits(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(units))
	for _, u := range units {
		if u.ID != "" {
			ids = append(ids, u.ID)
		}
	}

	r.cache.Set(ctx, ids)
	return ids, nil
}
