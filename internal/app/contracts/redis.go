package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	DeleteIfValue(ctx context.Context, key string, value interface{}) (int64, error)
}
