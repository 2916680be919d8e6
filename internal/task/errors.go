package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("priority must be one of low, medium, high, urgent")
	ErrInvalidStatus   = errors.New("status must be one of pending, in_progress, completed")
	ErrInvalidDueDate  = errors.New("due_date must be YYYY-MM-DD")
	ErrInvalidDuration = errors.New("estimated_duration must be positive")
)
