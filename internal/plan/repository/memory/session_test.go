package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/log"
)

func TestPutGet(t *testing.T) {
	repo := New(10, time.Minute, log.NewNop())
	ctx := context.Background()

	s := model.PlanningSession{
		ID:     "s1",
		UserID: "u1",
		Stage:  model.StageSelect,
		Tasks:  []model.SessionTask{{ID: "t1", Duration: 30}},
	}
	require.NoError(t, repo.Put(ctx, s))

	// Mutating the caller's copy must not leak into the store.
	s.Tasks[0].Duration = 90

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, 30, got.Tasks[0].Duration)

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestExpiry(t *testing.T) {
	repo := New(10, 20*time.Millisecond, log.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, model.PlanningSession{ID: "s1"}))
	time.Sleep(60 * time.Millisecond)

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestCapacity(t *testing.T) {
	repo := New(1, time.Minute, log.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, model.PlanningSession{ID: "s1"}))
	require.NoError(t, repo.Put(ctx, model.PlanningSession{ID: "s2"}))

	got, _ := repo.Get(ctx, "s1")
	assert.Empty(t, got.ID)
	got, _ = repo.Get(ctx, "s2")
	assert.Equal(t, "s2", got.ID)
}
