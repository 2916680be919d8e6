package postgre

import (
	"fmt"
	"strings"

	repo "smart-daily-planner/internal/note/repository"
)

func buildListWhere(opt repo.ListNotesOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}

	if opt.TaskID != "" {
		conditions = append(conditions, "task_id = $2")
		args = append(args, opt.TaskID)
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery appends ordering and paging to the shared WHERE clause.
func buildListQuery(opt repo.ListNotesOptions) (string, []any) {
	where, args := buildListWhere(opt)
	parts := []string{"WHERE " + where, "ORDER BY updated_at DESC"}
	idx := len(args) + 1

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}
	return strings.Join(parts, " "), args
}
