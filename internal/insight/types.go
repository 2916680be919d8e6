package insight

import "smart-daily-planner/internal/coach"

// Stored context loaded for Advise.
const (
	AdviceTaskLimit = 50
	AdviceNoteLimit = 10
)

type SummarizeInput struct {
	UserID  string
	NoteIDs []string
}

type AdviseInput struct {
	UserID string
	Tasks  []coach.Task
	Notes  []coach.Note
}
