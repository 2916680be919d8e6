package repository

import "errors"

var (
	ErrFailedToUpsert     = errors.New("failed to upsert daily plan")
	ErrFailedToGet        = errors.New("failed to get daily plan")
	ErrFailedToList       = errors.New("failed to list daily plans")
	ErrFailedToGetSession = errors.New("failed to get planning session")
	ErrFailedToPutSession = errors.New("failed to store planning session")
)
