package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultWindow      = 15 * time.Minute
	defaultMaxAttempts = 10
)

// LoginLimiter is a fixed-window counter throttling login attempts per
// email. Key format: login_attempts:<email>
//
// It counts attempts, not failures: a valid token is cheap to present, so a
// legitimate client hitting the cap is already misbehaving.
type LoginLimiter struct {
	client      *redis.Client
	window      time.Duration
	maxAttempts int64
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive window or maxAttempts fall back to the defaults.
func NewLoginLimiter(client *redis.Client, window time.Duration, maxAttempts int64) *LoginLimiter {
	if window <= 0 {
		window = defaultWindow
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &LoginLimiter{client: client, window: window, maxAttempts: maxAttempts}
}

// Allow records one attempt for key and reports whether it is within the
// window's budget. Errors are returned so the caller can decide to fail
// open; this limiter never fails closed on a Redis outage.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.key(key)

	n, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// First attempt in this window starts the clock.
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return true, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.maxAttempts, nil
}

func (l *LoginLimiter) key(email string) string {
	return "login_attempts:" + email
}
