package usecase

import (
	"strings"

	"github.com/google/uuid"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/task"
	"smart-daily-planner/pkg/wallclock"
)

// coalesce returns newVal unless it is empty.
func coalesce[T ~string](newVal, existing T) T {
	if newVal != "" {
		return newVal
	}
	return existing
}

// validID reports whether id can name a stored task. Anything else is
// treated as not found without reaching the database.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func validateFields(title string, priority model.Priority, status model.TaskStatus, dueDate string, duration int) error {
	if strings.TrimSpace(title) == "" {
		return task.ErrTitleRequired
	}
	if !priority.Valid() {
		return task.ErrInvalidPriority
	}
	if status != "" && !status.Valid() {
		return task.ErrInvalidStatus
	}
	if dueDate != "" {
		if _, err := wallclock.ParseDate(dueDate); err != nil {
			return task.ErrInvalidDueDate
		}
	}
	if duration <= 0 {
		return task.ErrInvalidDuration
	}
	return nil
}
