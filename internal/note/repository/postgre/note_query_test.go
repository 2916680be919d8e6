package postgre

import (
	"testing"

	"github.com/stretchr/testify/assert"

	repo "smart-daily-planner/internal/note/repository"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name     string
		opt      repo.ListNotesOptions
		wantMods string
		wantArgs []any
	}{
		{
			name:     "Owner only",
			opt:      repo.ListNotesOptions{UserID: "u1"},
			wantMods: "WHERE user_id = $1 ORDER BY updated_at DESC",
			wantArgs: []any{"u1"},
		},
		{
			name:     "Task filter and paging",
			opt:      repo.ListNotesOptions{UserID: "u1", TaskID: "t1", Limit: 10, Offset: 20},
			wantMods: "WHERE user_id = $1 AND task_id = $2 ORDER BY updated_at DESC LIMIT $3 OFFSET $4",
			wantArgs: []any{"u1", "t1", 10, 20},
		},
		{
			name:     "Offset only",
			opt:      repo.ListNotesOptions{UserID: "u1", Offset: 5},
			wantMods: "WHERE user_id = $1 ORDER BY updated_at DESC OFFSET $2",
			wantArgs: []any{"u1", 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := buildListQuery(tt.opt)
			assert.Equal(t, tt.wantMods, mods)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
