package suggestion

import "errors"

var (
	ErrNoTasks = errors.New("no tasks provided")

	errNoValidSuggestions = errors.New("no suggestion with a known type")
)
