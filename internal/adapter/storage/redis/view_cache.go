package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ViewCache implements ports.ViewCache using Redis. It is a best-effort read
// cache for session and listing views; the record store stays authoritative.
type ViewCache struct {
	client *goredis.Client
	prefix string
}

// NewViewCache creates a new Redis-backed view cache.
func NewViewCache(client *goredis.Client) *ViewCache {
	return &ViewCache{
		client: client,
		prefix: "view:",
	}
}

// Get retrieves a cached view by key. Returns nil, nil if the key does not
// exist.
func (c *ViewCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis view get: %w", err)
	}
	return val, nil
}

// Set stores a view in the cache with TTL.
func (c *ViewCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis view set: %w", err)
	}
	return nil
}

// Invalidate drops one or more cached views after a write settles.
func (c *ViewCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.prefix + k
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis view invalidate: %w", err)
	}
	return nil
}
