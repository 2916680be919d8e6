package estimator

import "errors"

var (
	ErrNoTasks = errors.New("no tasks provided")

	errNonPositiveEstimate = errors.New("estimated_minutes must be positive")
)
