package task

import "smart-daily-planner/internal/model"

// --- UseCase Inputs ---

type CreateTaskInput struct {
	UserID            string
	Title             string
	Description       string
	Priority          model.Priority
	DueDate           string
	EstimatedDuration int
}

type ListTasksInput struct {
	UserID   string
	Status   model.TaskStatus
	Priority model.Priority
	Limit    int
	Offset   int
}

// UpdateTaskInput is a partial update: zero values keep the stored field.
type UpdateTaskInput struct {
	UserID            string
	ID                string
	Title             string
	Description       string
	Priority          model.Priority
	Status            model.TaskStatus
	DueDate           string
	EstimatedDuration int
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
