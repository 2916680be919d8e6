package usecase

import (
	"context"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/task"
	repo "smart-daily-planner/internal/task/repository"
)

// List returns a paginated list of the user's tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if input.UserID == "" {
		return task.ListTasksOutput{}, task.ErrUnauthorized
	}
	if input.Status != "" && !input.Status.Valid() {
		return task.ListTasksOutput{}, task.ErrInvalidStatus
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return task.ListTasksOutput{}, task.ErrInvalidPriority
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   input.UserID,
		Status:   input.Status,
		Priority: input.Priority,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// GetByIDs implements task.UseCase. Ids that are not UUIDs are skipped
// like unknown ones.
func (uc *implUseCase) GetByIDs(ctx context.Context, userID string, ids []string) ([]model.Task, error) {
	if userID == "" {
		return nil, task.ErrUnauthorized
	}

	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []model.Task{}, nil
	}

	found, err := uc.repo.ListTasksByIDs(ctx, repo.ListTasksByIDsOptions{UserID: userID, IDs: valid})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByIDs ListTasksByIDs: %v", err)
		return nil, err
	}

	byID := make(map[string]model.Task, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	out := make([]model.Task, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, t)
	}
	return out, nil
}
