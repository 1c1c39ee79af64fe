package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrLimiterUnavailable = errors.New("rate limiter unavailable")

const RateLimitPrefix = "ratelimit"

// RateLimiter is a keyed expiring counter. Keeping it in redis means the
// once-per-window rule holds across restarts and replicas, unlike the
// per-process map it replaces.
type RateLimiter struct {
	Scope string // e.g. "testimonial", "prayer"
}

func NewRateLimiter(scope string) *RateLimiter {
	return &RateLimiter{Scope: scope}
}

// Hit records one submission for key and reports whether it was allowed.
// When blocked it returns how long until the window reopens.
func (r *RateLimiter) Hit(key string, window time.Duration) (bool, time.Duration, error) {
	ctx := context.Background()
	k := fmt.Sprintf("%s:%s:%s", RateLimitPrefix, r.Scope, key)

	n, err := Client.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, ErrLimiterUnavailable
	}
	if n == 1 {
		if err := Client.Expire(ctx, k, window).Err(); err != nil {
			return false, 0, ErrLimiterUnavailable
		}
		return true, 0, nil
	}

	ttl, err := Client.TTL(ctx, k).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	return false, ttl, nil
}
