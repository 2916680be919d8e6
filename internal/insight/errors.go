package insight

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNoNotesSelected = errors.New("at least one note id is required")
	ErrNotesNotFound   = errors.New("no notes found")
)
