package auth

import (
	"context"
	"sync"
	"time"
)

// slidingWindow tracks request timestamps for one key within the last minute
type slidingWindow struct {
	timestamps []time.Time
}

// RateLimiter is a per-key, in-process sliding-window limiter. Suitable for
// the single-instance dev server; the Lambda deployment relies on API Gateway
// throttling instead.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*slidingWindow
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per minute per key
func NewRateLimiter(limit int) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*slidingWindow),
		limit:   limit,
		window:  time.Minute,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether the key may proceed, recording the attempt if so
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok {
		w = &slidingWindow{}
		rl.windows[key] = w
	}

	cutoff := now.Add(-rl.window)
	kept := w.timestamps[:0]
	for _, ts := range w.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	w.timestamps = kept

	if len(w.timestamps) >= rl.limit {
		return false, nil
	}
	w.timestamps = append(w.timestamps, now)
	return true, nil
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-rl.window)
		for key, w := range rl.windows {
			if len(w.timestamps) == 0 || w.timestamps[len(w.timestamps)-1].Before(cutoff) {
				delete(rl.windows, key)
			}
		}
		rl.mu.Unlock()
	}
}
