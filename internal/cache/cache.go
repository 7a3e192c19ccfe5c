// Package cache provides a small Redis-backed read cache for the dashboard
// rollups. The dashboard polls its reads on a fixed interval, so a short TTL
// absorbs most of the repeat traffic without changing read semantics.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Cache backed by Redis, or nil when addr is empty or Redis is
// unreachable. A nil *Cache is valid: every method degrades to a miss, so
// callers fall through to the database.
func New(addr, password string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable, stats cache disabled: %v", err)
		return nil
	}

	return &Cache{client: client, ttl: ttl}
}

// GetJSON loads a cached value into dest, reporting whether it was present.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false
	}
	return true
}

// SetJSON stores a value under key for the cache TTL. Failures are ignored;
// the cache is best-effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.client.Set(ctx, key, payload, c.ttl)
}
