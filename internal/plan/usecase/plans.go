package usecase

import (
	"context"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/internal/plan/repository"
	"smart-daily-planner/pkg/wallclock"
)

func (uc *implUseCase) GetPlan(ctx context.Context, userID, date string) (model.DailyPlan, error) {
	if userID == "" {
		return model.DailyPlan{}, plan.ErrUnauthorized
	}
	if _, err := wallclock.ParseDate(date); err != nil {
		return model.DailyPlan{}, plan.ErrInvalidDate
	}

	p, err := uc.plans.GetByDate(ctx, repository.GetByDateOptions{UserID: userID, Date: date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetPlan GetByDate: %v", err)
		return model.DailyPlan{}, err
	}
	if p.ID == "" {
		return model.DailyPlan{}, plan.ErrPlanNotFound
	}
	return p, nil
}

func (uc *implUseCase) ListPlans(ctx context.Context, input plan.ListPlansInput) ([]model.DailyPlan, error) {
	if input.UserID == "" {
		return nil, plan.ErrUnauthorized
	}
	limit := input.Limit
	if limit <= 0 {
		limit = plan.DefaultListLimit
	}
	if limit > plan.MaxListLimit {
		limit = plan.MaxListLimit
	}

	list, err := uc.plans.List(ctx, repository.ListOptions{UserID: input.UserID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListPlans List: %v", err)
		return nil, err
	}
	return list, nil
}
