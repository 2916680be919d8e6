package plan

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionNotFound    = errors.New("planning session not found")
	ErrInvalidStage       = errors.New("operation not allowed at the current session stage")
	ErrNoTasks            = errors.New("at least one task is required")
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD")
	ErrTaskNotInSession   = errors.New("task is not part of this session")
	ErrInvalidDuration    = errors.New("duration must be between 1 and 1440 minutes")
	ErrSuggestionNotFound = errors.New("suggestion index out of range")
	ErrPlanNotFound       = errors.New("daily plan not found")
)
