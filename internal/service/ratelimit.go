package service

import (
	"context"
	"sync"
	"time"
)

// TokenBucket is an in-memory per-client rate limiter for the local API.
// Each key gets its own bucket; idle buckets are dropped by Sweep.
type TokenBucket struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens per second
	capacity float64
	idle     time.Duration
	now      func() time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucket creates a limiter allowing bursts of capacity requests per
// key, refilled at rate tokens per second.
func NewTokenBucket(rate, capacity float64) *TokenBucket {
	return &TokenBucket{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		idle:     10 * time.Minute,
		now:      time.Now,
	}
}

// Allow consumes one token for key and reports whether one was available.
func (tb *TokenBucket) Allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.now()
	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, last: now}
		tb.buckets[key] = b
	}

	b.tokens = min(b.tokens+now.Sub(b.last).Seconds()*tb.rate, tb.capacity)
	b.last = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Sweep drops buckets idle for longer than the idle window and returns how
// many remain.
func (tb *TokenBucket) Sweep() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	cutoff := tb.now().Add(-tb.idle)
	for key, b := range tb.buckets {
		if b.last.Before(cutoff) {
			delete(tb.buckets, key)
		}
	}
	return len(tb.buckets)
}

// SweepEvery calls Sweep on every tick until ctx is done.
func (tb *TokenBucket) SweepEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tb.Sweep()
		}
	}
}
