package plan

import (
	"context"

	"smart-daily-planner/internal/estimator"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/internal/suggestion"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Planning session steps. Each returns the session after the step.
	StartSession(ctx context.Context, input StartInput) (model.PlanningSession, error)
	GetSession(ctx context.Context, userID, sessionID string) (model.PlanningSession, error)
	AnalyzeDurations(ctx context.Context, userID, sessionID string) (model.PlanningSession, error)
	AdjustDuration(ctx context.Context, input AdjustDurationInput) (model.PlanningSession, error)
	GenerateSuggestions(ctx context.Context, userID, sessionID string) (model.PlanningSession, error)
	SetSuggestion(ctx context.Context, input SetSuggestionInput) (model.PlanningSession, error)
	GenerateSchedule(ctx context.Context, userID, sessionID string) (model.PlanningSession, error)
	Save(ctx context.Context, userID, sessionID string) (SaveOutput, error)

	// Stored plans.
	GetPlan(ctx context.Context, userID, date string) (model.DailyPlan, error)
	ListPlans(ctx context.Context, input ListPlansInput) ([]model.DailyPlan, error)

	// Stateless generation.
	EstimateDurations(ctx context.Context, input EstimateInput) (estimator.Output, error)
	Suggest(ctx context.Context, input suggestion.Input) (suggestion.Output, error)
	BuildSchedule(ctx context.Context, input ScheduleInput) (schedule.Result, error)
}

// Publisher pushes a saved plan to an external calendar.
type Publisher interface {
	Publish(ctx context.Context, p model.DailyPlan) error
}
