package note

import "smart-daily-planner/internal/model"

// MaxContentLength bounds a note body, in characters.
const MaxContentLength = 20000

type CreateInput struct {
	UserID  string
	Title   string
	Content string
	TaskID  string
}

// ListInput filters by TaskID when set. Newest edits come first.
type ListInput struct {
	UserID string
	TaskID string
	Limit  int
	Offset int
}

type ListOutput struct {
	Notes  []model.Note
	Total  int
	Limit  int
	Offset int
}

// UpdateInput is a partial update: nil fields keep the stored value. An
// empty TaskID detaches the note.
type UpdateInput struct {
	UserID  string
	ID      string
	Title   *string
	Content *string
	TaskID  *string
}
