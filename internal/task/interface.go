package task

import (
	"context"

	"smart-daily-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, userID, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, userID, id string) error

	// GetByIDs returns the user's tasks among ids, in the order of ids.
	// Unknown or foreign ids are skipped.
	GetByIDs(ctx context.Context, userID string, ids []string) ([]model.Task, error)
}
