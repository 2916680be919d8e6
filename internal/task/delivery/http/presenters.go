package http

import (
	"time"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title             string `json:"title"              binding:"required,min=1,max=255"`
	Description       string `json:"description"        binding:"max=2000"`
	Priority          string `json:"priority"           binding:"omitempty,oneof=low medium high urgent"`
	DueDate           string `json:"due_date"`
	EstimatedDuration int    `json:"estimated_duration" binding:"omitempty,min=1,max=1440"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(userID string) task.CreateTaskInput {
	return task.CreateTaskInput{
		UserID:            userID,
		Title:             r.Title,
		Description:       r.Description,
		Priority:          model.Priority(r.Priority),
		DueDate:           r.DueDate,
		EstimatedDuration: r.EstimatedDuration,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput(userID string) task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListTasksInput{
		UserID:   userID,
		Status:   model.TaskStatus(r.Status),
		Priority: model.Priority(r.Priority),
		Limit:    limit,
		Offset:   r.Offset,
	}
}

// ---

type updateReq struct {
	ID                string `json:"-"` // populated from URI param
	Title             string `json:"title"              binding:"omitempty,min=1,max=255"`
	Description       string `json:"description"        binding:"omitempty,max=2000"`
	Priority          string `json:"priority"           binding:"omitempty,oneof=low medium high urgent"`
	Status            string `json:"status"             binding:"omitempty,oneof=pending in_progress completed"`
	DueDate           string `json:"due_date"`
	EstimatedDuration int    `json:"estimated_duration" binding:"omitempty,min=1,max=1440"`
}

func (r updateReq) validate() error {
	if r.ID == "" {
		return errIDRequired
	}
	return nil
}

func (r updateReq) toInput(userID string) task.UpdateTaskInput {
	return task.UpdateTaskInput{
		UserID:            userID,
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		Priority:          model.Priority(r.Priority),
		Status:            model.TaskStatus(r.Status),
		DueDate:           r.DueDate,
		EstimatedDuration: r.EstimatedDuration,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Priority          string    `json:"priority"`
	Status            string    `json:"status"`
	DueDate           string    `json:"due_date,omitempty"`
	EstimatedDuration int       `json:"estimated_duration"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Priority:          string(t.Priority),
		Status:            string(t.Status),
		DueDate:           t.DueDate,
		EstimatedDuration: t.EstimatedDuration,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

type taskItemResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskItemResp(t model.Task) taskItemResp {
	return taskItemResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
