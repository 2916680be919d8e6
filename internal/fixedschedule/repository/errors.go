package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert fixed schedule")
	ErrFailedToList   = errors.New("failed to list fixed schedules")
	ErrFailedToUpdate = errors.New("failed to update fixed schedule")
	ErrFailedToDelete = errors.New("failed to delete fixed schedule")
)
