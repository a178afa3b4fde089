package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	pkgLog "propfirm-assistant/pkg/log"
)

// Config tunes the cache engine. Zero values fall back to the defaults; the
// similarity and TTL knobs exist because the production values were tuned
// empirically.
type Config struct {
	ExactTTL        time.Duration
	SemanticTTL     time.Duration
	SimilarityFloor float64
	SweepInterval   time.Duration
	MaxEntries      int
}

func (c *Config) applyDefaults() {
	if c.ExactTTL <= 0 {
		c.ExactTTL = DefaultExactTTL
	}
	if c.SemanticTTL <= 0 {
		c.SemanticTTL = DefaultSemanticTTL
	}
	if c.SimilarityFloor <= 0 {
		c.SimilarityFloor = DefaultSimilarityFloor
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = DefaultSweepInterval
	}
	if c.MaxEntries <= 0 {
		c.MaxEntries = DefaultMaxEntries
	}
}

// Engine is the three-tier response cache: exact match, semantic similarity,
// precomputed. One instance per process owns all cache state; a single lock
// guards the maps and counters.
type Engine struct {
	l   pkgLog.Logger
	cfg Config

	mu          sync.Mutex
	exact       *lru.Cache[string, *entry]
	semantic    map[string]*semanticEntry
	precomputed map[string]string
	patterns    []string

	metrics      Metrics
	latencyCount int64

	// now is injectable for TTL tests.
	now func() time.Time
}

// New constructs an Engine and seeds the precomputed tier.
func New(l pkgLog.Logger, cfg Config) (*Engine, error) {
	cfg.applyDefaults()

	exact, err := lru.New[string, *entry](cfg.MaxEntries)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		l:           l,
		cfg:         cfg,
		exact:       exact,
		semantic:    map[string]*semanticEntry{},
		precomputed: map[string]string{},
		patterns:    precomputedPatterns,
		now:         time.Now,
	}

	for _, seed := range precomputedSeeds {
		e.precomputed[precomputedKey(seed.Pattern, seed.Firm)] = seed.Response
	}
	return e, nil
}

func precomputedKey(pattern, firm string) string {
	return pattern + "_" + firmSlot(firm)
}
