package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert correction")
	ErrFailedToList   = errors.New("failed to list corrections")
)
