package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-daily-planner/internal/plan/repository"
	"smart-daily-planner/pkg/log"
)

// Defaults applied when the configured values are not positive.
const (
	DefaultCapacity = 1000
	DefaultTTL      = 2 * time.Hour
)

type implRepository struct {
	sessions *expirable.LRU[string, []byte]
	l        log.Logger
}

// New creates an in-process session store. Sessions are kept as encoded
// snapshots so callers never share slices with the store.
func New(capacity int, ttl time.Duration, l log.Logger) repository.SessionRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, []byte](capacity, nil, ttl),
		l:        l,
	}
}
