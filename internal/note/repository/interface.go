package repository

import (
	"context"

	"smart-daily-planner/internal/model"
)

// Repository is the note data store. Every method is scoped to the owner.
type Repository interface {
	CreateNote(ctx context.Context, opt CreateNoteOptions) (model.Note, error)
	GetOneNote(ctx context.Context, opt GetOneNoteOptions) (model.Note, error)
	ListNotes(ctx context.Context, opt ListNotesOptions) ([]model.Note, int, error)
	ListNotesByIDs(ctx context.Context, opt ListNotesByIDsOptions) ([]model.Note, error)
	UpdateNote(ctx context.Context, opt UpdateNoteOptions) (model.Note, error)
	DeleteNote(ctx context.Context, opt DeleteNoteOptions) (bool, error)
}
