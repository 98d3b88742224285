// Package cache provides the Redis-backed session store for the panel.
// It supports both embedded Redis (miniredis) and an external Redis server.
package cache

import (
	"context"
	"fmt"

	"edupanel/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	client    *redis.Client
	miniRedis *miniredis.Miniredis
	ctx       = context.Background()
)

// InitRedis initializes the Redis client. If redisAddr is empty, an embedded
// Redis is started so sessions survive only for the process lifetime; with
// an external address sessions persist across restarts.
func InitRedis(redisAddr string) error {
	if redisAddr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return fmt.Errorf("failed to start embedded Redis: %w", err)
		}
		miniRedis = mr
		client = redis.NewClient(&redis.Options{
			Addr: mr.Addr(),
		})
		logger.Info("Embedded Redis started on", mr.Addr())
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: redisAddr,
			DB:   0,
		})

		_, err := client.Ping(ctx).Result()
		if err != nil {
			return fmt.Errorf("failed to connect to Redis at %s: %w", redisAddr, err)
		}
		logger.Info("Connected to external Redis at", redisAddr)
	}

	return nil
}

// GetClient returns the Redis client instance.
func GetClient() *redis.Client {
	return client
}

// GetMiniRedis returns the embedded Redis instance, or nil when an external
// Redis is in use. Tests use it to advance key TTLs.
func GetMiniRedis() *miniredis.Miniredis {
	return miniRedis
}

// Close closes the Redis connection and stops embedded Redis if running.
func Close() error {
	if client != nil {
		if err := client.Close(); err != nil {
			return err
		}
	}
	if miniRedis != nil {
		miniRedis.Close()
	}
	return nil
}
