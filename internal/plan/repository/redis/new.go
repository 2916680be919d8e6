package redis

import (
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"smart-daily-planner/internal/plan/repository"
	"smart-daily-planner/pkg/log"
)

const (
	keyPrefix  = "planner:session:"
	DefaultTTL = 2 * time.Hour
)

type implRepository struct {
	client *goredis.Client
	ttl    time.Duration
	l      log.Logger
}

// New creates a Redis-backed session store; every Put refreshes the TTL.
func New(client *goredis.Client, ttl time.Duration, l log.Logger) repository.SessionRepository {
	if client == nil {
		panic("plan/repository/redis: client is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{client: client, ttl: ttl, l: l}
}

func (r *implRepository) key(id string) string {
	return keyPrefix + id
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("plan/repository/redis.%s", method)
}
