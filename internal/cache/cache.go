package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache layers an in-process LRU (L1) over an optional Redis (L2). With a
// nil Redis client it behaves as a plain LRU.
type Cache struct {
	prefix  string
	l1Cache *LRU[string]
	l2Cache *redis.Client
	l2TTL   time.Duration
}

func NewMultiTierCache(prefix string, l1Capacity int, redisClient *redis.Client, l2TTL time.Duration) *Cache {
	return &Cache{
		prefix:  prefix,
		l1Cache: NewLRU[string](l1Capacity),
		l2Cache: redisClient,
		l2TTL:   l2TTL,
	}
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// Get returns the cached value. A Redis failure is reported as an error
// alongside a miss; callers treat both as a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	k := c.key(key)

	if val, found := c.l1Cache.Get(k); found {
		return val, true, nil
	}

	if c.l2Cache == nil {
		return "", false, nil
	}

	val, err := c.l2Cache.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", k, err)
	}

	c.l1Cache.Set(k, val)
	return val, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value string) error {
	k := c.key(key)
	c.l1Cache.Set(k, value)

	if c.l2Cache == nil {
		return nil
	}

	if err := c.l2Cache.Set(ctx, k, value, c.l2TTL).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", k, err)
	}
	return nil
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, found, err := c.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}

	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.Set(ctx, key, string(data))
}
