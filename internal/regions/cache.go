// Regional caches: the latest run's district figures, in memory or in redis.
package regions

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Cache holds the most recent set of district figures. Replace overwrites
// the whole set.
type Cache interface {
	Replace(ctx context.Context, figures map[string]int) error
	Get(ctx context.Context, id string) (int, bool, error)
	All(ctx context.Context) (map[string]int, error)
}

// MemoryCache is a process-local Cache.
type MemoryCache struct {
	mu      sync.RWMutex
	figures map[string]int
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{figures: map[string]int{}}
}

func (m *MemoryCache) Replace(_ context.Context, figures map[string]int) error {
	next := make(map[string]int, len(figures))
	for k, v := range figures {
		next[k] = v
	}
	m.mu.Lock()
	m.figures = next
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Get(_ context.Context, id string) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.figures[id]
	return v, ok, nil
}

func (m *MemoryCache) All(_ context.Context) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int, len(m.figures))
	for k, v := range m.figures {
		out[k] = v
	}
	return out, nil
}

// DefaultRedisKey is the hash that holds the figures.
const DefaultRedisKey = "urbansim:regions:latest"

// RedisCache stores the figures in a single redis hash.
type RedisCache struct {
	client *redis.Client
	key    string
}

// NewRedisCache wraps an existing client. An empty key uses DefaultRedisKey.
func NewRedisCache(client *redis.Client, key string) *RedisCache {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisCache{client: client, key: key}
}

// Replace deletes and rewrites the hash inside one MULTI/EXEC.
func (c *RedisCache) Replace(ctx context.Context, figures map[string]int) error {
	fields := make(map[string]any, len(figures))
	for k, v := range figures {
		fields[k] = v
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.key)
		if len(fields) > 0 {
			pipe.HSet(ctx, c.key, fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis replace %s: %w", c.key, err)
	}
	return nil
}

func (c *RedisCache) Get(ctx context.Context, id string) (int, bool, error) {
	v, err := c.client.HGet(ctx, c.key, id).Int()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get %s: %w", id, err)
	}
	return v, true, nil
}

func (c *RedisCache) All(ctx context.Context) (map[string]int, error) {
	raw, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis all %s: %w", c.key, err)
	}
	out := make(map[string]int, len(raw))
	for k, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("redis field %s: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}
