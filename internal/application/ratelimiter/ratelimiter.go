package ratelimiter

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrRateLimitExceeded is returned when the rate limit is exceeded
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// RateLimiter allows at most maxCalls within any sliding window of windowDuration
type RateLimiter struct {
	mu             sync.Mutex
	maxCalls       int
	windowDuration time.Duration
	callTimestamps []time.Time
	now            func() time.Time
}

// NewRateLimiter creates a new rate limiter with the specified max calls and window duration.
// A nil clock defaults to time.Now.
func NewRateLimiter(maxCalls int, windowDuration time.Duration, clock func() time.Time) *RateLimiter {
	if maxCalls <= 0 {
		maxCalls = 1
	}
	if windowDuration <= 0 {
		windowDuration = time.Minute
	}
	if clock == nil {
		clock = time.Now
	}

	return &RateLimiter{
		maxCalls:       maxCalls,
		windowDuration: windowDuration,
		callTimestamps: make([]time.Time, 0, maxCalls),
		now:            clock,
	}
}

// Allow records a call or returns ErrRateLimitExceeded. It never blocks.
func (rl *RateLimiter) Allow(_ context.Context) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.evict(now)

	if len(rl.callTimestamps) >= rl.maxCalls {
		return ErrRateLimitExceeded
	}

	rl.callTimestamps = append(rl.callTimestamps, now)
	return nil
}

// evict drops timestamps that fell out of the window
func (rl *RateLimiter) evict(now time.Time) {
	cutoff := now.Add(-rl.windowDuration)
	valid := rl.callTimestamps[:0]
	for _, ts := range rl.callTimestamps {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	rl.callTimestamps = valid
}
