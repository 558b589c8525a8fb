package config

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/connectly/web/internal/cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache holds the latest-post store and the connection behind it
type Cache struct {
	LatestPosts cache.LatestPostStore
	redis       *redis.Client
}

// InitCache connects to Redis when a URL is configured and falls back to
// an in-memory store otherwise
func InitCache(cfg *Config, logger *zap.Logger) (*Cache, error) {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, latest posts kept in memory")
		return &Cache{LatestPosts: cache.NewMemoryLatestPostStore()}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis", zap.String("addr", opts.Addr))
	return &Cache{
		LatestPosts: cache.NewRedisLatestPostStore(client, cfg.LatestPostTTL),
		redis:       client,
	}, nil
}

// Close closes the Redis connection, if any
func (c *Cache) Close(logger *zap.Logger) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		logger.Warn("Error closing Redis connection", zap.Error(err))
		return
	}
	logger.Info("Redis connection closed.")
}
