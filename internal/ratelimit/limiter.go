// Package ratelimit bounds how often a key may act within a fixed window.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter decides whether key may perform one more action.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Unlimited allows everything.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (bool, error) { return true, nil }

// Counter increments a windowed counter and returns its new value.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter keeps window counters in Redis.
type RedisCounter struct {
	client redis.Cmdable
}

// NewRedisCounter wraps client.
func NewRedisCounter(client redis.Cmdable) *RedisCounter {
	return &RedisCounter{client: client}
}

// Incr bumps key and refreshes its expiry.
func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// FixedWindow allows Limit actions per key per Window.
type FixedWindow struct {
	counter Counter
	prefix  string
	limit   int64
	window  time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

// NewFixedWindow builds a limiter. A non-positive limit disables it.
func NewFixedWindow(counter Counter, prefix string, limit int, window time.Duration, logger *zap.Logger) Limiter {
	if counter == nil || limit <= 0 {
		return Unlimited{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FixedWindow{
		counter: counter,
		prefix:  prefix,
		limit:   int64(limit),
		window:  window,
		now:     time.Now,
		logger:  logger,
	}
}

// Allow reports whether key is under its limit. Counter failures let the
// request through and are returned for logging.
func (f *FixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	bucket := f.now().UnixNano() / int64(f.window)
	n, err := f.counter.Incr(ctx, fmt.Sprintf("%s:%s:%d", f.prefix, key, bucket), f.window)
	if err != nil {
		f.logger.Warn("rate limiter unavailable; allowing request", zap.String("key", key), zap.Error(err))
		return true, err
	}
	return n <= f.limit, nil
}
