package middleware

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Second), 5)

	rl.limiterFor("10.0.0.1")
	rl.limiterFor("10.0.0.2")

	// Age one visitor past the idle cutoff.
	rl.mu.Lock()
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-2 * visitorIdleTTL)
	rl.mu.Unlock()

	rl.evictIdle(time.Now().Add(-visitorIdleTTL))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.visitors["10.0.0.1"]; ok {
		t.Error("idle visitor survived eviction")
	}
	if _, ok := rl.visitors["10.0.0.2"]; !ok {
		t.Error("active visitor evicted")
	}
}

func TestRateLimiter_ActivityRefreshesLastSeen(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Second), 5)

	rl.limiterFor("10.0.0.3")
	rl.mu.Lock()
	rl.visitors["10.0.0.3"].lastSeen = time.Now().Add(-2 * visitorIdleTTL)
	rl.mu.Unlock()

	// A new request from the same IP resets its clock before any sweep.
	rl.limiterFor("10.0.0.3")
	rl.evictIdle(time.Now().Add(-visitorIdleTTL))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.visitors["10.0.0.3"]; !ok {
		t.Error("refreshed visitor evicted")
	}
}
