package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a pinged client, or nil when REDIS_ADDR is unset or the
// server cannot be reached. Redis is optional: without it the login limiter is off.
func ConnectRedis(ctx context.Context, cfg *AppConfig) *redis.Client {
	if cfg.RedisAddr == "" {
		slog.Info("REDIS_ADDR not set, login limiter disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed, login limiter disabled", "address", cfg.RedisAddr, "error", err)
		_ = rdb.Close()
		return nil
	}

	slog.Info("Redis connection successful", "address", cfg.RedisAddr)
	return rdb
}
