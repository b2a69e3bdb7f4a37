// Package ratelimit throttles repeated failed logins with a Redis fixed-window counter.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"business_manager/internal/logging"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "login_attempts"

// LoginLimiter counts failed logins per email. A nil limiter or one without a
// client allows everything; Redis errors are logged and also allow (fail open).
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
	prefix      string
}

// NewLoginLimiter creates a LoginLimiter. Non-positive limits fall back to 5 attempts per 15 minutes.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window, prefix: defaultPrefix}
}

func (l *LoginLimiter) key(email string) string {
	return fmt.Sprintf("%s:%s", l.prefix, strings.ToLower(strings.TrimSpace(email)))
}

func (l *LoginLimiter) disabled() bool {
	return l == nil || l.client == nil
}

// Allow reports whether another login attempt for email may proceed
func (l *LoginLimiter) Allow(ctx context.Context, email string) bool {
	if l.disabled() {
		return true
	}
	val, err := l.client.Get(ctx, l.key(email)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.FromContext(ctx).Warn("login limiter unavailable", "error", err)
		}
		return true
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return true
	}
	return n < l.maxAttempts
}

// RegisterFailure counts a failed attempt; the first failure opens the window
func (l *LoginLimiter) RegisterFailure(ctx context.Context, email string) {
	if l.disabled() {
		return
	}
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		logging.FromContext(ctx).Warn("login limiter increment failed", "error", err)
		return
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			logging.FromContext(ctx).Warn("login limiter expire failed", "error", err)
		}
	}
}

// Reset clears the counter after a successful login
func (l *LoginLimiter) Reset(ctx context.Context, email string) {
	if l.disabled() {
		return
	}
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		logging.FromContext(ctx).Warn("login limiter reset failed", "error", err)
	}
}
