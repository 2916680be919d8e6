package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert note")
	ErrFailedToGet    = errors.New("failed to get note")
	ErrFailedToList   = errors.New("failed to list notes")
	ErrFailedToUpdate = errors.New("failed to update note")
	ErrFailedToDelete = errors.New("failed to delete note")
)
