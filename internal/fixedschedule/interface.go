package fixedschedule

import (
	"context"

	"smart-daily-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.FixedSchedule, error)
	List(ctx context.Context, input ListInput) ([]model.FixedSchedule, error)
	Update(ctx context.Context, input UpdateInput) (model.FixedSchedule, error)
	Delete(ctx context.Context, userID, id string) error
}
