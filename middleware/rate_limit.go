package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc returns the bucket key for a request (defaults to client IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
	// Now is the time source (defaults to time.Now)
	Now func() time.Time
}

// window tracks request count until expiresAt
type window struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a fixed-window per-key rate limiter
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*window
	mu     sync.Mutex
}

// NewRateLimiter creates a rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &RateLimiter{
		config: config,
		store:  make(map[string]*window),
	}
}

// NewAPIRateLimiter limits API requests to perMinute per IP
func NewAPIRateLimiter(perMinute int) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Requests: perMinute,
		Window:   time.Minute,
		Message:  "Rate limit exceeded. Please slow down your requests.",
	})
}

// Allow records a request for key and reports whether it is within the limit,
// along with the time the current window resets
func (rl *RateLimiter) Allow(key string) (bool, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.config.Now()
	entry, exists := rl.store[key]
	if !exists || !now.Before(entry.expiresAt) {
		entry = &window{expiresAt: now.Add(rl.config.Window)}
		rl.store[key] = entry
	}
	if entry.count >= rl.config.Requests {
		return false, entry.expiresAt
	}
	entry.count++
	return true, entry.expiresAt
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, resetAt := rl.Allow(rl.config.KeyFunc(c))
			if !ok {
				retry := int(resetAt.Sub(rl.config.Now()).Seconds()) + 1
				c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
				return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
			}
			return next(c)
		}
	}
}

// Sweep removes expired windows and returns how many were dropped
func (rl *RateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.config.Now()
	removed := 0
	for key, entry := range rl.store {
		if !now.Before(entry.expiresAt) {
			delete(rl.store, key)
			removed++
		}
	}
	return removed
}

// StartCleanup sweeps expired windows every interval until ctx is done
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Sweep()
			}
		}
	}()
}
