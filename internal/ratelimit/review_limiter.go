package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/slzdigital/catalogo/internal/config"
)

const keyReviewSubmit = "reviews:submit:ip:%s"

// ReviewLimiter throttles review submission per client IP. A nil limiter
// (no redis configured) allows everything, so the public surface degrades
// to unthrottled rather than unavailable.
type ReviewLimiter struct {
	bucket *TokenBucket

	ratePerSecond float64
	burst         int
}

func NewReviewLimiter(cfg config.Config) *ReviewLimiter {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled() {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     limitCfg.RedisAddr,
		Password: limitCfg.RedisPassword,
		DB:       limitCfg.RedisDB,
	})

	rate := limitCfg.ReviewRatePerMinute / 60
	if rate <= 0 {
		rate = 0.1
	}
	burst := limitCfg.ReviewBurst
	if burst <= 0 {
		burst = 1
	}

	return &ReviewLimiter{
		bucket:        NewTokenBucket(client),
		ratePerSecond: rate,
		burst:         burst,
	}
}

func (l *ReviewLimiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

// Allow reports whether the client may submit another review and, when
// denied, how long to wait. Redis failures surface as errors; the caller
// decides whether to fail open.
func (l *ReviewLimiter) Allow(ctx context.Context, clientIP string) (*Result, error) {
	if !l.Enabled() {
		return &Result{Allowed: true}, nil
	}

	key := fmt.Sprintf(keyReviewSubmit, strings.TrimSpace(clientIP))
	return l.bucket.Allow(ctx, key, l.ratePerSecond, l.burst)
}

// RetryAfterSeconds rounds up for the Retry-After response header.
func RetryAfterSeconds(d time.Duration) int {
	seconds := int((d + time.Second - 1) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}
