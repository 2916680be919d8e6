package repository

import (
	"context"

	"smart-daily-planner/internal/model"
)

// Repository stores fixed schedules, always scoped to the owner.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.FixedSchedule, error)
	List(ctx context.Context, opt ListOptions) ([]model.FixedSchedule, error)
	// Update returns a zero value when nothing matched.
	Update(ctx context.Context, opt UpdateOptions) (model.FixedSchedule, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, opt DeleteOptions) (bool, error)
}
