package repository

import (
	"context"

	"smart-daily-planner/internal/model"
)

// Repository is the append-only correction log.
type Repository interface {
	CreateCorrection(ctx context.Context, opt CreateCorrectionOptions) (model.DurationCorrection, error)
	// ListRecent returns the user's corrections, newest first.
	ListRecent(ctx context.Context, opt ListRecentOptions) ([]model.DurationCorrection, error)
}
