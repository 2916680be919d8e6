package redis

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"

	"smart-daily-planner/config"
)

// Connect creates a client and verifies it with PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis.Connect: %w", err)
	}

	return client, nil
}
