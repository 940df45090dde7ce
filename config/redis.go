package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates the diagnostics Redis client and verifies it with Ping.
// Timeouts are short: Redis only carries logs and must never slow a request.
func InitRedis(ctx context.Context, cfg *Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPass,
		DB:           cfg.RedisDB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
		PoolSize:     5,
		MinIdleConns: 1,
	})
	if err := pingRedis(ctx, rdb); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s db=%d: %w", cfg.RedisAddr, cfg.RedisDB, err)
	}
	return rdb, nil
}

func pingRedis(ctx context.Context, rdb *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return rdb.Ping(ctx).Err()
}
