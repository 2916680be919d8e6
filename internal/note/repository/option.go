package repository

type CreateNoteOptions struct {
	UserID  string
	Title   string
	Content string
	TaskID  string
}

type GetOneNoteOptions struct {
	ID     string
	UserID string
}

type ListNotesOptions struct {
	UserID string
	TaskID string
	Limit  int
	Offset int
}

type ListNotesByIDsOptions struct {
	UserID string
	IDs    []string
}

// UpdateNoteOptions carries the full new state of a note.
type UpdateNoteOptions struct {
	ID      string
	UserID  string
	Title   string
	Content string
	TaskID  string
}

type DeleteNoteOptions struct {
	ID     string
	UserID string
}
