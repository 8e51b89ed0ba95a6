package service

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBucket(rate, capacity float64) (*TokenBucket, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	tb := NewTokenBucket(rate, capacity)
	tb.now = clock.now
	return tb, clock
}

func TestTokenBucket_AllowsUpToCapacity(t *testing.T) {
	tb, _ := newTestBucket(1, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow("test-key") {
			t.Fatalf("request %d should be allowed (bucket not yet empty)", i+1)
		}
	}
	if tb.Allow("test-key") {
		t.Fatal("4th request should be denied (bucket empty)")
	}
}

func TestTokenBucket_DifferentKeysAreIndependent(t *testing.T) {
	tb, _ := newTestBucket(1, 1)

	if !tb.Allow("ip-a") {
		t.Fatal("ip-a first request should be allowed")
	}
	if tb.Allow("ip-a") {
		t.Fatal("ip-a second request should be denied")
	}
	if !tb.Allow("ip-b") {
		t.Fatal("ip-b first request should be allowed (independent bucket)")
	}
}

func TestTokenBucket_Refills(t *testing.T) {
	tb, clock := newTestBucket(2, 2)

	tb.Allow("k")
	tb.Allow("k")
	if tb.Allow("k") {
		t.Fatal("bucket should be empty")
	}

	clock.advance(500 * time.Millisecond)
	if !tb.Allow("k") {
		t.Fatal("one token should have refilled after half a second at 2/s")
	}
	if tb.Allow("k") {
		t.Fatal("only one token should have refilled")
	}

	clock.advance(time.Hour)
	for i := 0; i < 2; i++ {
		if !tb.Allow("k") {
			t.Fatalf("refill must cap at capacity; request %d denied", i+1)
		}
	}
	if tb.Allow("k") {
		t.Fatal("refill must not exceed capacity")
	}
}

func TestTokenBucket_ZeroRateNeverRefills(t *testing.T) {
	tb, clock := newTestBucket(0, 1)

	if !tb.Allow("k") {
		t.Fatal("first request should be allowed")
	}
	clock.advance(time.Hour)
	if tb.Allow("k") {
		t.Fatal("second request should be denied (no refill)")
	}
}

func TestTokenBucket_SweepDropsIdleBuckets(t *testing.T) {
	tb, clock := newTestBucket(1, 1)

	tb.Allow("old")
	clock.advance(11 * time.Minute)
	tb.Allow("fresh")

	if remaining := tb.Sweep(); remaining != 1 {
		t.Fatalf("expected 1 bucket after sweep, got %d", remaining)
	}
}
