package note

import (
	"context"

	"smart-daily-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Note, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, userID, id string) (model.Note, error)
	Update(ctx context.Context, input UpdateInput) (model.Note, error)
	Delete(ctx context.Context, userID, id string) error

	// GetByIDs returns the user's notes among ids, in the order of ids.
	// Unknown, foreign or malformed ids are skipped.
	GetByIDs(ctx context.Context, userID string, ids []string) ([]model.Note, error)
}
