package postgre

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smart-daily-planner/internal/model"
	repo "smart-daily-planner/internal/task/repository"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.ListTasksOptions
		wantMods string
		wantArgs []any
	}{
		{
			name:     "Owner only",
			opt:      repo.ListTasksOptions{UserID: "u1"},
			wantMods: "WHERE user_id = $1 ORDER BY created_at DESC",
			wantArgs: []any{"u1"},
		},
		{
			name:     "Filters and paging",
			opt:      repo.ListTasksOptions{UserID: "u1", Status: model.TaskStatusPending, Priority: model.PriorityHigh, Limit: 20, Offset: 40},
			wantMods: "WHERE user_id = $1 AND status = $2 AND priority = $3 ORDER BY created_at DESC LIMIT $4 OFFSET $5",
			wantArgs: []any{"u1", model.TaskStatusPending, model.PriorityHigh, 20, 40},
		},
		{
			name:     "Priority only",
			opt:      repo.ListTasksOptions{UserID: "u1", Priority: model.PriorityLow, Limit: 5},
			wantMods: "WHERE user_id = $1 AND priority = $2 ORDER BY created_at DESC LIMIT $3",
			wantArgs: []any{"u1", model.PriorityLow, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildListQuery(tt.opt)
			assert.Equal(t, tt.wantMods, mods)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
