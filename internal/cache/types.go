package cache

import "time"

// Tier identifies which cache layer produced a hit.
type Tier string

const (
	TierExact       Tier = "exact"
	TierSemantic    Tier = "semantic"
	TierPrecomputed Tier = "precomputed"
)

// Hit is a successful cache lookup.
type Hit struct {
	Response   string
	Tier       Tier
	Similarity float64 // set for semantic hits only
}

// Embedding is a sparse term-frequency vector over the normalized words of a
// question. Owned by its entry, recomputed on insert, never mutated.
type Embedding map[string]float64

// entry is a stored answer in the exact tier.
type entry struct {
	response    string
	createdAt   time.Time
	ttl         time.Duration
	accessCount int64
}

// expired reports whether the entry is logically absent. A malformed entry
// with a zero creation time fails safe to a miss.
func (e *entry) expired(now time.Time) bool {
	if e == nil || e.createdAt.IsZero() {
		return true
	}
	return now.Sub(e.createdAt) > e.ttl
}

// semanticEntry is a stored answer in the similarity tier, carrying the
// embedding of its original question.
type semanticEntry struct {
	entry
	firm      string
	question  string
	embedding Embedding
}

// Metrics is an observational snapshot of engine counters. It never affects
// control flow.
type Metrics struct {
	TotalQueries       int64   `json:"total_queries"`
	ExactHits          int64   `json:"exact_hits"`
	SemanticHits       int64   `json:"semantic_hits"`
	PrecomputedHits    int64   `json:"precomputed_hits"`
	Misses             int64   `json:"misses"`
	AvgResponseMs      float64 `json:"avg_response_ms"`
	ExactEntries       int     `json:"exact_entries"`
	SemanticEntries    int     `json:"semantic_entries"`
	PrecomputedEntries int     `json:"precomputed_entries"`
}

// HitRate is the fraction of lookups answered by any tier.
func (m Metrics) HitRate() float64 {
	if m.TotalQueries == 0 {
		return 0
	}
	hits := m.ExactHits + m.SemanticHits + m.PrecomputedHits
	return float64(hits) / float64(m.TotalQueries)
}
