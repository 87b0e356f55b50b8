package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/slzdigital/catalogo/internal/config"
)

func TestBucketTTLCoversTwoRefills(t *testing.T) {
	if got := bucketTTL(1, 3); got != 6*time.Second {
		t.Fatalf("ttl = %v, want 6s", got)
	}
	if got := bucketTTL(10, 1); got != 1*time.Second {
		t.Fatalf("ttl = %v, want 1s", got)
	}
}

func TestCastHelpers(t *testing.T) {
	if castToInt(int64(1)) != 1 || castToInt("x") != 0 {
		t.Fatal("castToInt")
	}
	if castToFloat("2.5") != 2.5 || castToFloat(int64(3)) != 3 {
		t.Fatal("castToFloat")
	}
}

func TestRetryAfterSecondsRoundsUp(t *testing.T) {
	if got := RetryAfterSeconds(1500 * time.Millisecond); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if got := RetryAfterSeconds(0); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestReviewLimiterDisabledWithoutRedis(t *testing.T) {
	limiter := NewReviewLimiter(config.Config{})
	if limiter.Enabled() {
		t.Fatal("limiter must be disabled without a redis address")
	}

	res, err := limiter.Allow(context.Background(), "10.0.0.1")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Allowed {
		t.Fatal("disabled limiter must allow everything")
	}
}
