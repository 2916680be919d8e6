package note

import "errors"

var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrTitleRequired  = errors.New("title is required")
	ErrContentTooLong = errors.New("content must be at most 20000 characters")
	ErrInvalidTaskID  = errors.New("task_id must be a UUID")
)
