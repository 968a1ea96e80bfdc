package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterWindowAndReset(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	key := "127.0.0.1"
	window := 15 * time.Minute
	now := time.Now().UTC()

	limiter.addFailure(key, now.Add(-time.Hour), window)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected old attempt to be pruned from active window")
	}

	limiter.addFailure(key, now.Add(-5*time.Minute), window)
	if !limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected one recent attempt to hit limit 1")
	}

	limiter.reset(key)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected no attempts after reset")
	}
}

func TestAttemptLimiterCountsUpToLimit(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	key := "10.0.0.7"
	window := 15 * time.Minute
	now := time.Now().UTC()

	for i := 0; i < 7; i++ {
		limiter.addFailure(key, now, window)
	}
	if limiter.tooManyRecent(key, now, 8, window) {
		t.Fatal("expected seven failures to stay under limit 8")
	}

	limiter.addFailure(key, now, window)
	if !limiter.tooManyRecent(key, now, 8, window) {
		t.Fatal("expected the eighth failure to trip the limit")
	}
}
