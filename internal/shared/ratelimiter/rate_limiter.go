// Package ratelimiter provides a simple fixed-window rate limiter.
package ratelimiter

import (
	"sync"
	"time"
)

// window tracks request counts within the current fixed window for one key.
type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter limits how often an operation may run per key within a fixed
// interval. It is safe for concurrent use.
type RateLimiter struct {
	mu       sync.Mutex
	limit    int
	interval time.Duration
	windows  map[string]*window
	now      func() time.Time
}

// NewRateLimiter creates a RateLimiter allowing limit operations per key
// per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  map[string]*window{},
		now:      time.Now,
	}
}

// Allow reports whether one more operation is permitted for key. A denied
// call does not extend the window.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(rl.interval)}
		rl.sweep(now)
		return true
	}

	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// sweep drops stale windows so the map does not grow unbounded.
// Caller must hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, w := range rl.windows {
		if now.After(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}
