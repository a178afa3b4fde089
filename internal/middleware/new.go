package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"propfirm-assistant/pkg/log"
)

type Middleware struct {
	l          log.Logger
	adminToken string
	limiters   *rateLimiter
}

// Config holds middleware tunables.
type Config struct {
	AdminToken      string // token required on admin routes; empty disables the check
	RateLimitPerMin int    // per-client request budget; 0 uses DefaultRateLimitPerMin
}

const DefaultRateLimitPerMin = 60

func New(l log.Logger, cfg Config) Middleware {
	perMin := cfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = DefaultRateLimitPerMin
	}
	return Middleware{
		l:          l,
		adminToken: cfg.AdminToken,
		limiters:   newRateLimiter(perMin),
	}
}

// rateLimiter keeps one token bucket per client with auto-expiring entries.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
