package schedule

import "errors"

var (
	ErrNoTasks     = errors.New("no tasks provided")
	ErrInvalidDate = errors.New("invalid plan date")

	errEmptyTimeBlocks = errors.New("timeBlocks is empty")
)
