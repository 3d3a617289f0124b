package redis

import (
	"abdm-link-service/internal/app/contracts"
	"abdm-link-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var (
	redisRepositoryInstance contracts.RedisRepository
	onceRedisRepository     sync.Once
)

// deleteIfValueScript returns -1 when the key is absent, 0 when it holds
// another value and 1 once it is deleted.
var deleteIfValueScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return -1
end
if current == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	onceRedisRepository.Do(func() {
		redisRepositoryInstance = &redisRepository{client: client}
	})
	return redisRepositoryInstance
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

// DeleteIfValue removes key only while it still holds value, encoded the same
// way TrySetNX stores it. The check and the delete run as one script.
func (r *redisRepository) DeleteIfValue(ctx context.Context, key string, value interface{}) (int64, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := deleteIfValueScript.Run(ctx, r.client, []string{key}, string(jsonValue)).Int64()
	if err != nil {
		return 0, exceptions.ErrRedisDelete(err)
	}
	return result, nil
}
