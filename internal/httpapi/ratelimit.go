package httpapi

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RateLimitConfig sets the per-client token bucket. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   int
	Burst int
}

type tokenBucket struct {
	tokens     float64
	lastRefill time.Time
}

type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*tokenBucket
	rate      float64
	burst     float64
	now       func() time.Time
	lastSweep time.Time
}

const (
	sweepEvery = 5 * time.Minute
	idleAfter  = 10 * time.Minute
)

func newRateLimiter(cfg RateLimitConfig, now func() time.Time) *rateLimiter {
	burst := cfg.Burst
	if burst < 1 {
		burst = cfg.RPS
	}
	return &rateLimiter{
		clients:   make(map[string]*tokenBucket),
		rate:      float64(cfg.RPS),
		burst:     float64(burst),
		now:       now,
		lastSweep: now(),
	}
}

func (rl *rateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > sweepEvery {
		for k, b := range rl.clients {
			if now.Sub(b.lastRefill) > idleAfter {
				delete(rl.clients, k)
			}
		}
		rl.lastSweep = now
	}

	b, ok := rl.clients[client]
	if !ok {
		b = &tokenBucket{tokens: rl.burst, lastRefill: now}
		rl.clients[client] = b
	}
	b.tokens += now.Sub(b.lastRefill).Seconds() * rl.rate
	if b.tokens > rl.burst {
		b.tokens = rl.burst
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *rateLimiter) middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isProbe(c.Path()) {
			return c.Next()
		}
		if !rl.allow(c.IP()) {
			c.Set(fiber.HeaderRetryAfter, "1")
			return problemResponse(c, fiber.StatusTooManyRequests,
				"rate_limit_exceeded", "Too Many Requests",
				"Rate limit exceeded. Please try again later.")
		}
		return c.Next()
	}
}
