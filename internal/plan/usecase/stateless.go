package usecase

import (
	"context"

	"smart-daily-planner/internal/estimator"
	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/internal/suggestion"
)

// EstimateDurations runs the estimator outside a session. Authenticated
// callers get their correction patterns and fixed schedules as context.
func (uc *implUseCase) EstimateDurations(ctx context.Context, input plan.EstimateInput) (estimator.Output, error) {
	return uc.estimator.Estimate(ctx, estimator.Input{
		Tasks:    input.Tasks,
		Patterns: uc.patterns(ctx, input.UserID),
		Fixed:    uc.storedFixed(ctx, input.UserID),
	})
}

func (uc *implUseCase) Suggest(ctx context.Context, input suggestion.Input) (suggestion.Output, error) {
	return uc.suggester.Generate(ctx, input)
}

func (uc *implUseCase) BuildSchedule(ctx context.Context, input plan.ScheduleInput) (schedule.Result, error) {
	tasks := make([]schedule.Task, len(input.Tasks))
	for i, t := range input.Tasks {
		tasks[i] = schedule.Task(t)
	}

	fixed := input.Fixed
	if len(fixed) == 0 {
		fixed = uc.storedFixed(ctx, input.UserID)
	}

	return uc.builder.Build(ctx, schedule.Input{
		Date:        input.Date,
		Tasks:       tasks,
		Suggestions: input.Suggestions,
		Fixed:       fixed,
	})
}

// storedFixed returns every fixed schedule of the user, or nil for
// anonymous callers and on failure.
func (uc *implUseCase) storedFixed(ctx context.Context, userID string) []model.FixedSchedule {
	if userID == "" {
		return nil
	}
	list, err := uc.fixedUC.List(ctx, fixedschedule.ListInput{UserID: userID})
	if err != nil {
		uc.l.Warnf(ctx, "uc.storedFixed: %v", err)
		return nil
	}
	return list
}
