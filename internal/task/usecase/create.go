package usecase

import (
	"context"
	"strings"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/task"
	repo "smart-daily-planner/internal/task/repository"
)

// Create validates and stores a new pending task. Priority defaults to
// medium and the estimate to one hour.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if input.UserID == "" {
		return task.CreateTaskOutput{}, task.ErrUnauthorized
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if input.EstimatedDuration == 0 {
		input.EstimatedDuration = model.DefaultEstimatedDuration
	}
	input.Title = strings.TrimSpace(input.Title)
	if err := validateFields(input.Title, input.Priority, "", input.DueDate, input.EstimatedDuration); err != nil {
		return task.CreateTaskOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:            input.UserID,
		Title:             input.Title,
		Description:       input.Description,
		Priority:          input.Priority,
		DueDate:           input.DueDate,
		EstimatedDuration: input.EstimatedDuration,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: t}, nil
}
