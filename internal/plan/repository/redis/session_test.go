package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan/repository"
	"smart-daily-planner/pkg/log"
)

func unreachableClient() *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestNew_Defaults(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	r := New(client, 0, log.NewNop()).(*implRepository)
	assert.Equal(t, DefaultTTL, r.ttl)
	assert.Equal(t, "planner:session:abc", r.key("abc"))

	assert.Panics(t, func() { New(nil, time.Minute, log.NewNop()) })
}

func TestUnavailableServer(t *testing.T) {
	client := unreachableClient()
	defer client.Close()
	r := New(client, time.Minute, log.NewNop())

	_, err := r.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, repository.ErrFailedToGetSession)

	err = r.Put(context.Background(), model.PlanningSession{ID: "s1"})
	assert.ErrorIs(t, err, repository.ErrFailedToPutSession)
}
