package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewsCache stores provider payloads keyed by country and query term.
type NewsCache struct {
	client *redis.Client
}

func NewNewsCache(client *redis.Client) *NewsCache {
	return &NewsCache{client: client}
}

// Get returns (nil, nil) on a cache miss.
func (c *NewsCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache key %s: %w", key, err)
	}
	return val, nil
}

func (c *NewsCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("writing cache key %s: %w", key, err)
	}
	return nil
}
