package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const stockKeyPrefix = "stock:"

var decrementStockScript = redis.NewScript(`
local key = KEYS[1]
local quantity = tonumber(ARGV[1])

local current = redis.call('GET', key)
if not current then
	return 0
end

current = tonumber(current)
if current >= quantity then
	redis.call('DECRBY', key, quantity)
	return 1
end

return 0
`)

// RedisAdapter mirrors catalog stock levels into Redis. The mirror is
// observational; checkout never reads it back for validation.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) SetStock(ctx context.Context, name string, quantity int) error {
	return r.client.Set(ctx, stockKeyPrefix+name, quantity, 0).Err()
}

func (r *RedisAdapter) DecrementStock(ctx context.Context, name string, quantity int) (bool, error) {
	key := stockKeyPrefix + name

	result, err := decrementStockScript.Run(ctx, r.client, []string{key}, quantity).Int()
	if err != nil {
		return false, err
	}

	return result == 1, nil
}

// GetStock reads the mirrored quantity, with ok=false when no entry exists.
func (r *RedisAdapter) GetStock(ctx context.Context, name string) (int, bool, error) {
	value, err := r.client.Get(ctx, stockKeyPrefix+name).Int()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}
