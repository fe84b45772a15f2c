package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eaglebank/account-grpc/internal/logger"
	goredis "github.com/redis/go-redis/v9"
)

// ViewCache is a JSON-backed Redis cache bound to one value type T. A zero TTL
// stores keys without expiry.
type ViewCache[T any] struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewViewCache[T any](client *goredis.Client, ttl time.Duration) *ViewCache[T] {
	return &ViewCache[T]{client: client, ttl: ttl}
}

// Get returns (nil, false) on a miss, a Redis error or a payload that no
// longer decodes into T.
func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			logger.Error("view cache read failed", err, logger.Fields{"key": key})
		}
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Error("view cache decode failed", err, logger.Fields{"key": key})
		return nil, false
	}
	return &v, true
}

// Set stores value under key. Failures are logged, never returned.
func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Error("view cache encode failed", err, logger.Fields{"key": key})
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Error("view cache write failed", err, logger.Fields{"key": key})
	}
}

func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logger.Error("view cache delete failed", err, logger.Fields{"key": key})
	}
}
