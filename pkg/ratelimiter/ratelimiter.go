// Package ratelimiter bounds how often a client may perform an action
// within a sliding window. The redis implementation keeps the state shared
// across instances and TTL-bounded; the in-memory one is a single-instance
// fallback for deployments without redis.
package ratelimiter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter reports whether the given key may perform one more request.
// A true result also records the request against the window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type redisLimiter struct {
	rdb    *redis.Client
	scope  string
	limit  int
	window time.Duration
}

// NewRedisLimiter allows limit requests per window per key, backed by a
// redis sorted set of request timestamps. Keys expire one window after the
// last request, so idle clients cost nothing.
func NewRedisLimiter(rdb *redis.Client, scope string, limit int, window time.Duration) Limiter {
	return &redisLimiter{rdb: rdb, scope: scope, limit: limit, window: window}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	redisKey := fmt.Sprintf("rate_limit:%s:%s", l.scope, key)
	cutoff := strconv.FormatInt(now.Add(-l.window).UnixNano(), 10)

	if err := l.rdb.ZRemRangeByScore(ctx, redisKey, "-inf", cutoff).Err(); err != nil {
		return false, fmt.Errorf("failed to trim rate limit window: %w", err)
	}

	count, err := l.rdb.ZCard(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count rate limit window: %w", err)
	}
	if count >= int64(l.limit) {
		return false, nil
	}

	member := strconv.FormatInt(now.UnixNano(), 10)
	if err := l.rdb.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member}).Err(); err != nil {
		return false, fmt.Errorf("failed to record request: %w", err)
	}
	if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
		return false, fmt.Errorf("failed to set rate limit ttl: %w", err)
	}

	return true, nil
}

// ClientIP derives the rate-limit key for an HTTP request: the first
// X-Forwarded-For entry, else X-Real-IP, else "unknown".
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return "unknown"
}
