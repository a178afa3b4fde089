package cache

import (
	"context"
	"strings"
	"time"
)

// Lookup consults the tiers in strict order: exact, semantic, precomputed.
// The first tier that hits answers; tiers below it are never consulted.
func (e *Engine) Lookup(ctx context.Context, question, firm string) (Hit, bool) {
	normalized := Normalize(question)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.metrics.TotalQueries++
	now := e.now()

	// L1: exact match.
	key := exactKey(normalized, firm)
	if ent, ok := e.exact.Get(key); ok {
		if ent.expired(now) {
			e.exact.Remove(key)
		} else {
			ent.accessCount++
			e.metrics.ExactHits++
			return Hit{Response: ent.response, Tier: TierExact}, true
		}
	}

	// L2: best cosine match over all live entries. Linear scan: best-match
	// semantics over lookup cost at this scale.
	if hit, ok := e.lookupBySimilarity(normalized, firm, now); ok {
		e.metrics.SemanticHits++
		return hit, true
	}

	// L3: precomputed canned answers.
	for _, pattern := range e.patterns {
		if !strings.Contains(normalized, pattern) {
			continue
		}
		if resp, ok := e.precomputed[precomputedKey(pattern, firm)]; ok {
			e.metrics.PrecomputedHits++
			return Hit{Response: resp, Tier: TierPrecomputed}, true
		}
		if resp, ok := e.precomputed[precomputedKey(pattern, "")]; ok {
			e.metrics.PrecomputedHits++
			return Hit{Response: resp, Tier: TierPrecomputed}, true
		}
	}

	e.metrics.Misses++
	return Hit{}, false
}

// lookupBySimilarity scans the live semantic entries for the closest match
// above the similarity floor. Expired entries found along the way are evicted.
// Caller holds the lock.
func (e *Engine) lookupBySimilarity(normalized, firm string, now time.Time) (Hit, bool) {
	probe := BuildEmbedding(normalized)
	slot := firmSlot(firm)

	var best *semanticEntry
	bestScore := 0.0

	for key, cand := range e.semantic {
		if cand.expired(now) {
			delete(e.semantic, key)
			continue
		}
		if firm != "" && cand.firm != slot {
			continue
		}
		score := CosineSimilarity(probe, cand.embedding)
		if score > bestScore {
			bestScore = score
			best = cand
		}
	}

	if best == nil || bestScore < e.cfg.SimilarityFloor {
		return Hit{}, false
	}
	best.accessCount++
	return Hit{Response: best.response, Tier: TierSemantic, Similarity: bestScore}, true
}

// Store caches a fresh, fully-formed answer in every tier that applies:
// exact and semantic unconditionally, precomputed first-write-wins when the
// question matches a known pattern. Callers must only store successful
// answers; errors never enter the cache.
func (e *Engine) Store(ctx context.Context, question, firm, response string) {
	normalized := Normalize(question)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()

	e.exact.Add(exactKey(normalized, firm), &entry{
		response:  response,
		createdAt: now,
		ttl:       e.cfg.ExactTTL,
	})

	semKey := firmSlot(firm) + ":" + normalized
	e.semantic[semKey] = &semanticEntry{
		entry: entry{
			response:  response,
			createdAt: now,
			ttl:       e.cfg.SemanticTTL,
		},
		firm:      firmSlot(firm),
		question:  normalized,
		embedding: BuildEmbedding(normalized),
	}

	for _, pattern := range e.patterns {
		if !strings.Contains(normalized, pattern) {
			continue
		}
		key := precomputedKey(pattern, firm)
		if _, exists := e.precomputed[key]; !exists {
			e.precomputed[key] = response
			e.l.Debugf(ctx, "%s: precomputed entry added for pattern %q firm %q",
				LogPrefixStore, pattern, firmSlot(firm))
		}
	}
}

// ClearAll empties the exact and semantic tiers. Precomputed answers are
// durable reference data and survive.
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.exact.Purge()
	e.semantic = map[string]*semanticEntry{}
}

// ObserveLatency folds one end-to-end response time into the running average
// (incremental mean).
func (e *Engine) ObserveLatency(elapsed time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.latencyCount++
	ms := float64(elapsed.Milliseconds())
	e.metrics.AvgResponseMs += (ms - e.metrics.AvgResponseMs) / float64(e.latencyCount)
}

// Snapshot returns a copy of the engine counters plus current tier sizes.
func (e *Engine) Snapshot() Metrics {
	e.mu.Lock()
	defer e.mu.Unlock()
	m := e.metrics
	m.ExactEntries = e.exact.Len()
	m.SemanticEntries = len(e.semantic)
	m.PrecomputedEntries = len(e.precomputed)
	return m
}

// Start runs the periodic sweep until the context is cancelled. The sweep is
// a safety net on top of read-time expiry checks; L3 is immune.
func (e *Engine) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(e.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				e.l.Info(ctx, "cache sweep stopped")
				return
			case <-ticker.C:
				removed := e.sweep()
				if removed > 0 {
					e.l.Debugf(ctx, "%s: removed %d expired entries", LogPrefixSweep, removed)
				}
			}
		}
	}()
}

// sweep removes expired exact and semantic entries.
func (e *Engine) sweep() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	removed := 0

	for _, key := range e.exact.Keys() {
		if ent, ok := e.exact.Peek(key); ok && ent.expired(now) {
			e.exact.Remove(key)
			removed++
		}
	}
	for key, ent := range e.semantic {
		if ent.expired(now) {
			delete(e.semantic, key)
			removed++
		}
	}
	return removed
}
