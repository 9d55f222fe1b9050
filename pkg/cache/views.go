package cache

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ViewCounter accumulates page views on top of the seeded totals. Counts
// are deltas since process start (or since the Redis key was last reset).
type ViewCounter interface {
	Increment(ctx context.Context, pageID string) (int64, error)
	Count(ctx context.Context, pageID string) (int64, error)
}

type RedisViewCounter struct {
	client *redis.Client
}

func NewRedisViewCounter(client *redis.Client) *RedisViewCounter {
	return &RedisViewCounter{client: client}
}

func (c *RedisViewCounter) Increment(ctx context.Context, pageID string) (int64, error) {
	return c.client.Incr(ctx, "views:"+pageID).Result()
}

func (c *RedisViewCounter) Count(ctx context.Context, pageID string) (int64, error) {
	n, err := c.client.Get(ctx, "views:"+pageID).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

// MemoryViewCounter is the single-process fallback used when no REDIS_URL
// is configured.
type MemoryViewCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemoryViewCounter() *MemoryViewCounter {
	return &MemoryViewCounter{counts: make(map[string]int64)}
}

func (c *MemoryViewCounter) Increment(ctx context.Context, pageID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[pageID]++
	return c.counts[pageID], nil
}

func (c *MemoryViewCounter) Count(ctx context.Context, pageID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[pageID], nil
}
