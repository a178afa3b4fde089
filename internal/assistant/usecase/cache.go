package usecase

import (
	"context"

	"propfirm-assistant/internal/cache"
)

// CacheMetrics returns the current response cache counters.
func (uc *implUseCase) CacheMetrics(ctx context.Context) cache.Metrics {
	return uc.cache.Snapshot()
}

// ClearCache invalidates the exact and semantic tiers. The precomputed tier
// survives: its answers are curated, not generated.
func (uc *implUseCase) ClearCache(ctx context.Context) {
	uc.l.Infof(ctx, "clearing response cache (exact + semantic tiers)")
	uc.cache.ClearAll()
}
