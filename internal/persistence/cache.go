package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ListCache is a read-through cache for catalog list responses. A nil or
// unreachable Redis degrades to cache misses; callers fall back to the store.
type ListCache struct {
	redis  *Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewListCache builds a cache with the given entry TTL.
func NewListCache(r *Redis, ttl time.Duration, logger *zap.Logger) *ListCache {
	return &ListCache{redis: r, ttl: ttl, logger: logger}
}

// Get unmarshals the cached value for key into dest. The second return is
// false on a miss or any Redis failure.
func (c *ListCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.redis == nil || c.redis.Client == nil || c.ttl <= 0 {
		return false
	}
	raw, err := c.redis.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores value under key for the configured TTL. Failures are logged
// and swallowed; the cache is best-effort.
func (c *ListCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.redis == nil || c.redis.Client == nil || c.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.redis.Client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Debug("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate removes keys after a mutation.
func (c *ListCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.redis == nil || c.redis.Client == nil || len(keys) == 0 {
		return
	}
	if err := c.redis.Client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("cache invalidate failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
