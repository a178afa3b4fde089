package cache

import "time"

// Log prefixes
const (
	LogPrefixLookup = "internal.cache.Lookup"
	LogPrefixStore  = "internal.cache.Store"
	LogPrefixSweep  = "internal.cache.sweep"
)

// Tier defaults. The similarity floor is tuned empirically; both it and the
// TTLs are configurable.
const (
	DefaultExactTTL        = 10 * time.Minute
	DefaultSemanticTTL     = 30 * time.Minute
	DefaultSimilarityFloor = 0.75
	DefaultSweepInterval   = 5 * time.Minute
	DefaultMaxEntries      = 512
)

// Normalization bounds key growth.
const maxNormalizedLen = 200

// minEmbeddingWordLen drops short words (articles, connectors) from
// term-frequency embeddings. Measured in runes.
const minEmbeddingWordLen = 4

// firmGeneral is the firm slot used when no firm was specified.
const firmGeneral = "general"
