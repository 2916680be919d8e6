package repository

import (
	"context"

	"smart-daily-planner/internal/model"
)

// PlanRepository stores daily plans and their task assignments.
type PlanRepository interface {
	// Upsert creates or replaces the plan for (UserID, PlanDate) and swaps
	// its assignments in the same transaction.
	Upsert(ctx context.Context, opt UpsertOptions) (model.DailyPlan, error)
	// GetByDate returns a zero value when no plan exists.
	GetByDate(ctx context.Context, opt GetByDateOptions) (model.DailyPlan, error)
	List(ctx context.Context, opt ListOptions) ([]model.DailyPlan, error)
}

// SessionRepository keeps planning sessions for a bounded time.
type SessionRepository interface {
	// Get returns a zero value when the session is unknown or expired.
	Get(ctx context.Context, id string) (model.PlanningSession, error)
	Put(ctx context.Context, s model.PlanningSession) error
}
