package usecase

import (
	"context"
	"strings"

	"smart-daily-planner/internal/task"
	repo "smart-daily-planner/internal/task/repository"
)

// Detail retrieves one of the user's tasks. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, userID, id string) (task.DetailTaskOutput, error) {
	if userID == "" {
		return task.DetailTaskOutput{}, task.ErrUnauthorized
	}
	if !validID(id) {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if t.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update applies a partial update. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	if input.UserID == "" {
		return task.UpdateTaskOutput{}, task.ErrUnauthorized
	}
	if !validID(input.ID) {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:                input.ID,
		UserID:            input.UserID,
		Title:             coalesce(strings.TrimSpace(input.Title), existing.Title),
		Description:       coalesce(input.Description, existing.Description),
		Priority:          coalesce(input.Priority, existing.Priority),
		Status:            coalesce(input.Status, existing.Status),
		DueDate:           coalesce(input.DueDate, existing.DueDate),
		EstimatedDuration: existing.EstimatedDuration,
	}
	if input.EstimatedDuration != 0 {
		opt.EstimatedDuration = input.EstimatedDuration
	}
	if err := validateFields(opt.Title, opt.Priority, opt.Status, opt.DueDate, opt.EstimatedDuration); err != nil {
		return task.UpdateTaskOutput{}, err
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if t.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateTaskOutput{Task: t}, nil
}

// Delete removes one of the user's tasks. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return task.ErrUnauthorized
	}
	if !validID(id) {
		return task.ErrTaskNotFound
	}
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: userID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
