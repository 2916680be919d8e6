package correction

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidDuration = errors.New("durations must be positive")
	ErrTitleRequired   = errors.New("task title is required")
)
