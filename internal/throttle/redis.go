package throttle

import (
	"context"

	"candidate-platform/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter implements Limiter on the shared Redis rate-window script.
type RedisLimiter struct {
	rdb    *redis.Client
	window Window
}

func NewRedisLimiter(rdb *redis.Client, window Window) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return utils.AllowRateSlot(ctx, l.rdb, key, l.window.Limit, l.window.Period)
}
