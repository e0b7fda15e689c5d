package cache

import (
	"context"
	"fmt"
	"time"

	"garage-dashboard/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a redis-backed read-through cache for resolved availability
// lists. Invalidation is by per-garage version counter: mutations bump
// the version, which orphans every cached date for that garage. A nil
// *Cache is valid and disables caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// New connects to redis, or returns nil (caching disabled) when no
// address is configured.
func New(config utils.RedisConfig, log *zap.Logger) (*Cache, error) {
	if config.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Cache{
		client: client,
		ttl:    time.Duration(config.TTLSeconds) * time.Second,
		log:    log.With(zap.String("component", "cache")),
	}, nil
}

func (c *Cache) version(ctx context.Context, garageID string) int64 {
	v, err := c.client.Get(ctx, "avail:ver:"+garageID).Int64()
	if err != nil && err != redis.Nil {
		c.log.Warn("Failed to read cache version", zap.Error(err))
	}
	return v
}

func (c *Cache) key(ctx context.Context, garageID, date string) string {
	return fmt.Sprintf("avail:%s:%d:%s", garageID, c.version(ctx, garageID), date)
}

// GetAvailability returns the cached availability payload for a
// (garage, date) pair, if present.
func (c *Cache) GetAvailability(ctx context.Context, garageID, date string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, c.key(ctx, garageID, date)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("Cache read failed", zap.Error(err))
		return nil, false
	}

	return data, true
}

// SetAvailability stores a resolved availability payload.
func (c *Cache) SetAvailability(ctx context.Context, garageID, date string, payload []byte) {
	if c == nil {
		return
	}

	if err := c.client.Set(ctx, c.key(ctx, garageID, date), payload, c.ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", zap.Error(err))
	}
}

// InvalidateGarage drops every cached availability entry for a garage
// by bumping its version counter. Called after slot toggles and
// booking mutations.
func (c *Cache) InvalidateGarage(ctx context.Context, garageID string) {
	if c == nil {
		return
	}

	if err := c.client.Incr(ctx, "avail:ver:"+garageID).Err(); err != nil {
		c.log.Warn("Cache invalidation failed", zap.Error(err))
	}
}

// Close releases the redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
