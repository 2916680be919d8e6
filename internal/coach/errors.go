package coach

import "errors"

var (
	ErrNoNotes = errors.New("no notes provided")

	errEmptySummary = errors.New("summary is empty")
	errNoTips       = errors.New("no usable tip")
)
