package ratelimiter

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow(ip string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

// FixedWindowRateLimiter counts requests per client IP inside a fixed time
// window. Windows expire lazily on the next Allow call, so no background
// goroutine is needed.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	frame   time.Duration
}

type window struct {
	count   int
	resetAt time.Time
}

func NewFixedWindowLimiter(limit int, frame time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		frame:   frame,
	}
}

// Allow reports whether the client may proceed. When the limit is hit it
// returns the time remaining until the window resets.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[ip]
	if !ok || now.After(w.resetAt) {
		rl.windows[ip] = &window{count: 1, resetAt: now.Add(rl.frame)}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	return false, time.Until(w.resetAt)
}
