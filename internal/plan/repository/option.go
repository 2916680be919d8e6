package repository

import "smart-daily-planner/internal/model"

type UpsertOptions struct {
	Plan        model.DailyPlan
	Assignments []model.PlanTaskAssignment
}

type GetByDateOptions struct {
	UserID string
	Date   string
}

type ListOptions struct {
	UserID string
	Limit  int
}
