package repository

import "smart-daily-planner/internal/model"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID            string
	Title             string
	Description       string
	Priority          model.Priority
	DueDate           string
	EstimatedDuration int
}

// GetOneTaskOptions selects one task of one user.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID   string
	Status   model.TaskStatus
	Priority model.Priority
	Limit    int
	Offset   int
	OrderBy  string
}

// ListTasksByIDsOptions selects a set of tasks of one user.
type ListTasksByIDsOptions struct {
	UserID string
	IDs    []string
}

// UpdateTaskOptions carries the full new state of a task.
type UpdateTaskOptions struct {
	ID                string
	UserID            string
	Title             string
	Description       string
	Priority          model.Priority
	Status            model.TaskStatus
	DueDate           string
	EstimatedDuration int
}

// DeleteTaskOptions selects the task to delete.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
