package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"furnimarket/pkg/logger"
)

// RateLimiter is a per-IP token bucket. An IP that drains its bucket is
// blocked for one full window before the bucket refills.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     int
	window   time.Duration
}

type visitor struct {
	tokens     int
	lastSeen   time.Time
	blockUntil time.Time
}

func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
	}

	go rl.cleanup()

	return rl
}

// Middleware rejects requests from drained IPs with 429 and a retry hint.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if ok, resetAt := rl.allow(ip); !ok {
				logger.Warn("Rate limit exceeded for IP %s on %s", ip, c.Path())
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(time.Until(resetAt).Seconds()),
				})
			}

			return next(c)
		}
	}
}

// allow consumes one token for ip, refilling proportionally to the time
// elapsed since the last request.
func (rl *RateLimiter) allow(ip string) (bool, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	v, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &visitor{tokens: rl.rate - 1, lastSeen: now}
		return true, time.Time{}
	}

	if now.Before(v.blockUntil) {
		return false, v.blockUntil
	}

	elapsed := now.Sub(v.lastSeen)
	refill := int(int64(elapsed) * int64(rl.rate) / int64(rl.window))
	v.tokens += refill
	if v.tokens > rl.rate {
		v.tokens = rl.rate
	}
	v.lastSeen = now

	if v.tokens <= 0 {
		v.blockUntil = now.Add(rl.window)
		return false, v.blockUntil
	}

	v.tokens--
	return true, time.Time{}
}

// cleanup drops IPs not seen for a while so the map does not grow without
// bound.
func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(time.Hour)

		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastSeen) > 2*time.Hour {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Shared limiters for the unauthenticated surfaces.
var (
	// Suggestions are hit on every keystroke of the search box.
	suggestionLimiter = NewRateLimiter(120, time.Minute)

	// Token minting is credential-shaped even outside production.
	devTokenLimiter = NewRateLimiter(5, time.Minute)
)

func SuggestionRateLimit() echo.MiddlewareFunc {
	return suggestionLimiter.Middleware()
}

func DevTokenRateLimit() echo.MiddlewareFunc {
	return devTokenLimiter.Middleware()
}
