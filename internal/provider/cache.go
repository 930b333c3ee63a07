package provider

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// IDCache memoizes a resolved unit-ID set. The memo is advisory only:
// losing it or serving it stale must never change which availability is
// reported, only how many upstream calls are made. Implementations
// therefore swallow their own failures.
type IDCache interface {
	Get(ctx context.Context) ([]string, bool)
	Set(ctx context.Context, ids []string)
}

// MemoryIDCache is the default process-local memo.
type MemoryIDCache struct {
	mu  sync.RWMutex
	ids []string
}

// NewMemoryIDCache creates an empty in-memory memo.
func NewMemoryIDCache() *MemoryIDCache {
	return &MemoryIDCache{}
}

func (c *MemoryIDCache) Get(ctx context.Context) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.ids) == 0 {
		return nil, false
	}
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out, true
}

func (c *MemoryIDCache) Set(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = make([]string, len(ids))
	copy(c.ids, ids)
}

const (
	redisIDKey = "pms:resolved-unit-ids"
	redisIDTTL = time.Hour
)

// RedisIDCache shares the memo across replicas. All Redis failures are
// logged and otherwise ignored.
type RedisIDCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisIDCache creates a Redis-backed memo on the given client.
func NewRedisIDCache(client *redis.Client, logger *zap.Logger) *RedisIDCache {
	return &RedisIDCache{client: client, logger: logger}
}

func (c *RedisIDCache) Get(ctx context.Context) ([]string, bool) {
	raw, err := c.client.Get(ctx, redisIDKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("redis id-cache read failed", zap.Error(err))
		}
		return nil, false
	}
	ids := strings.Split(raw, ",")
	if len(ids) == 0 || ids[0] == "" {
		return nil, false
	}
	return ids, true
}

func (c *RedisIDCache) Set(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	if err := c.client.Set(ctx, redisIDKey, strings.Join(ids, ","), redisIDTTL).Err(); err != nil {
		c.logger.Debug("redis id-cache write failed", zap.Error(err))
	}
}
