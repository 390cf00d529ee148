package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

type rateLimiter struct {
	max    int
	window time.Duration

	mu        sync.Mutex
	windows   map[string]*rateWindow
	lastSweep time.Time
}

// take counts one hit for key and returns the running count and window reset
// time. At most once per window it also sweeps expired entries, so the map
// stays bounded by the set of keys active in the last window.
func (rl *rateLimiter) take(key string, now time.Time) (int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) > rl.window {
		for k, w := range rl.windows {
			if now.After(w.resetAt) {
				delete(rl.windows, k)
			}
		}
		rl.lastSweep = now
	}

	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &rateWindow{resetAt: now.Add(rl.window)}
		rl.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt
}

// RateLimiter limits each client IP to maxRequests per window, per method and
// endpoint. Counters live in process memory; the storefront runs as a single
// instance and the limit is a courtesy guard, not an SLA.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	rl := &rateLimiter{
		max:       maxRequests,
		window:    window,
		windows:   make(map[string]*rateWindow),
		lastSweep: time.Now(),
	}

	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		count, resetAt := rl.take(key, time.Now())

		remaining := rl.max - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > rl.max {
			retryIn := int(time.Until(resetAt).Seconds())
			if retryIn < 0 {
				retryIn = 0
			}
			c.Header("Retry-After", strconv.Itoa(retryIn))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}

		c.Next()
	}
}
