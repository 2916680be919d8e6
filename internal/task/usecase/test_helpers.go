package usecase

import (
	"context"

	"github.com/google/uuid"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/task/repository"
)

// memRepo is an in-memory task store for tests.
type memRepo struct {
	tasks map[string]model.Task
	err   error

	byIDsCalls int
	byIDs      []string
}

func newMemRepo(tasks ...model.Task) *memRepo {
	m := &memRepo{tasks: make(map[string]model.Task)}
	for _, t := range tasks {
		m.tasks[t.ID] = t
	}
	return m
}

func (m *memRepo) CreateTask(_ context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	t := model.Task{
		ID:                uuid.NewString(),
		UserID:            opt.UserID,
		Title:             opt.Title,
		Description:       opt.Description,
		Priority:          opt.Priority,
		Status:            model.TaskStatusPending,
		DueDate:           opt.DueDate,
		EstimatedDuration: opt.EstimatedDuration,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *memRepo) GetOneTask(_ context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *memRepo) ListTasks(_ context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == opt.UserID && (opt.Status == "" || t.Status == opt.Status) {
			out = append(out, t)
		}
	}
	return out, len(out), nil
}

func (m *memRepo) ListTasksByIDs(_ context.Context, opt repository.ListTasksByIDsOptions) ([]model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.byIDsCalls++
	m.byIDs = opt.IDs
	var out []model.Task
	for _, id := range opt.IDs {
		if t, ok := m.tasks[id]; ok && t.UserID == opt.UserID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateTask(_ context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.Task{}, nil
	}
	t.Title = opt.Title
	t.Description = opt.Description
	t.Priority = opt.Priority
	t.Status = opt.Status
	t.DueDate = opt.DueDate
	t.EstimatedDuration = opt.EstimatedDuration
	m.tasks[t.ID] = t
	return t, nil
}

func (m *memRepo) DeleteTask(_ context.Context, opt repository.DeleteTaskOptions) error {
	if m.err != nil {
		return m.err
	}
	delete(m.tasks, opt.ID)
	return nil
}
