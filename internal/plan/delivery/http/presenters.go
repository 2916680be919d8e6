package http

import (
	"time"

	"smart-daily-planner/internal/estimator"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/internal/suggestion"
)

// --- Session requests ---

type startReq struct {
	Date    string   `json:"date"     binding:"required"`
	TaskIDs []string `json:"task_ids" binding:"required,min=1,dive,uuid"`
}

func (r startReq) toInput(userID string) plan.StartInput {
	return plan.StartInput{UserID: userID, Date: r.Date, TaskIDs: r.TaskIDs}
}

type adjustReq struct {
	SessionID string `json:"-"`
	TaskID    string `json:"-"`
	Duration  int    `json:"duration" binding:"required"`
	Reason    string `json:"reason"   binding:"max=1000"`
}

func (r adjustReq) toInput(userID string) plan.AdjustDurationInput {
	return plan.AdjustDurationInput{
		UserID:    userID,
		SessionID: r.SessionID,
		TaskID:    r.TaskID,
		Duration:  r.Duration,
		Reason:    r.Reason,
	}
}

type setSuggestionReq struct {
	SessionID string `json:"-"`
	Index     int    `json:"-"`
	Accepted  *bool  `json:"accepted" binding:"required"`
}

func (r setSuggestionReq) toInput(userID string) plan.SetSuggestionInput {
	return plan.SetSuggestionInput{
		UserID:    userID,
		SessionID: r.SessionID,
		Index:     r.Index,
		Accepted:  *r.Accepted,
	}
}

type listPlansReq struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

// --- Stateless requests ---

type analyzeTaskReq struct {
	ID                string `json:"id"                 binding:"required"`
	Title             string `json:"title"              binding:"required"`
	Description       string `json:"description"`
	Priority          string `json:"priority"`
	EstimatedDuration int    `json:"estimated_duration" binding:"min=0"`
}

type analyzeReq struct {
	Tasks []analyzeTaskReq `json:"tasks" binding:"dive"`
}

func (r analyzeReq) toInput(userID string) plan.EstimateInput {
	tasks := make([]estimator.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		duration := t.EstimatedDuration
		if duration <= 0 {
			duration = model.DefaultEstimatedDuration
		}
		tasks[i] = estimator.Task{
			ID:              t.ID,
			Title:           t.Title,
			Description:     t.Description,
			Priority:        model.Priority(t.Priority),
			CurrentDuration: duration,
		}
	}
	return plan.EstimateInput{UserID: userID, Tasks: tasks}
}

type suggestTaskReq struct {
	Title             string `json:"title"              binding:"required"`
	Description       string `json:"description"`
	Priority          string `json:"priority"`
	EstimatedDuration int    `json:"estimated_duration"`
	DueDate           string `json:"due_date"`
}

type suggestReq struct {
	Date  string           `json:"date"  binding:"required"`
	Tasks []suggestTaskReq `json:"tasks" binding:"dive"`
}

func (r suggestReq) toInput() suggestion.Input {
	tasks := make([]suggestion.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = suggestion.Task{
			Title:             t.Title,
			Description:       t.Description,
			Priority:          model.Priority(t.Priority),
			EstimatedDuration: t.EstimatedDuration,
			DueDate:           t.DueDate,
		}
	}
	return suggestion.Input{Tasks: tasks, Date: r.Date}
}

type scheduleTaskReq struct {
	ID                string `json:"id"                 binding:"required"`
	Title             string `json:"title"              binding:"required"`
	Priority          string `json:"priority"`
	EstimatedDuration int    `json:"estimated_duration"`
	DueDate           string `json:"due_date"`
}

type scheduleReq struct {
	Date           string                `json:"date"            binding:"required"`
	Tasks          []scheduleTaskReq     `json:"tasks"           binding:"dive"`
	Suggestions    []model.Suggestion    `json:"suggestions"`
	FixedSchedules []model.FixedSchedule `json:"fixed_schedules"`
}

func (r scheduleReq) toInput(userID string) plan.ScheduleInput {
	tasks := make([]plan.ScheduleTask, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = plan.ScheduleTask{
			ID:                t.ID,
			Title:             t.Title,
			Priority:          model.Priority(t.Priority),
			EstimatedDuration: t.EstimatedDuration,
			DueDate:           t.DueDate,
		}
	}
	return plan.ScheduleInput{
		UserID:      userID,
		Date:        r.Date,
		Tasks:       tasks,
		Suggestions: r.Suggestions,
		Fixed:       r.FixedSchedules,
	}
}

// --- Responses ---

type sessionResp struct {
	ID               string                `json:"id"`
	Date             string                `json:"date"`
	Stage            string                `json:"stage"`
	Tasks            []model.SessionTask   `json:"tasks"`
	FixedSchedules   []model.FixedSchedule `json:"fixed_schedules"`
	Analyses         []model.TaskAnalysis  `json:"task_analyses"`
	AnalysisSource   model.Source          `json:"analysis_source,omitempty"`
	Suggestions      []model.Suggestion    `json:"suggestions"`
	SuggestionSource model.Source          `json:"suggestion_source,omitempty"`
	TimeBlocks       []model.TimeBlock     `json:"time_blocks"`
	ScheduleSource   model.Source          `json:"schedule_source,omitempty"`
	Warnings         []string              `json:"warnings"`
	TotalMinutes     int                   `json:"total_minutes"`
	PlanID           string                `json:"plan_id,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

func newSessionResp(s model.PlanningSession) sessionResp {
	return sessionResp{
		ID:               s.ID,
		Date:             s.Date,
		Stage:            string(s.Stage),
		Tasks:            orEmpty(s.Tasks),
		FixedSchedules:   orEmpty(s.Fixed),
		Analyses:         orEmpty(s.Analyses),
		AnalysisSource:   s.AnalysisSource,
		Suggestions:      orEmpty(s.Suggestions),
		SuggestionSource: s.SuggestionSource,
		TimeBlocks:       orEmpty(s.Blocks),
		ScheduleSource:   s.ScheduleSource,
		Warnings:         orEmpty(s.Warnings),
		TotalMinutes:     schedule.TotalMinutes(s.Blocks),
		PlanID:           s.PlanID,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

type planResp struct {
	ID                string             `json:"id"`
	PlanDate          string             `json:"plan_date"`
	Title             string             `json:"title"`
	TotalTasks        int                `json:"total_tasks"`
	EstimatedDuration int                `json:"estimated_duration"`
	Status            string             `json:"status"`
	AISuggestions     []model.Suggestion `json:"ai_suggestions"`
	TimeBlocks        []model.TimeBlock  `json:"time_blocks"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func newPlanResp(p model.DailyPlan) planResp {
	return planResp{
		ID:                p.ID,
		PlanDate:          p.PlanDate,
		Title:             p.Title,
		TotalTasks:        p.TotalTasks,
		EstimatedDuration: p.EstimatedDuration,
		Status:            string(p.Status),
		AISuggestions:     orEmpty(p.AISuggestions),
		TimeBlocks:        orEmpty(p.TimeBlocks),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type saveResp struct {
	Plan    planResp    `json:"plan"`
	Session sessionResp `json:"session"`
}

type listPlansResp struct {
	Plans []planResp `json:"plans"`
}

func newListPlansResp(list []model.DailyPlan) listPlansResp {
	out := make([]planResp, len(list))
	for i, p := range list {
		out[i] = newPlanResp(p)
	}
	return listPlansResp{Plans: out}
}

type analyzeResp struct {
	TaskAnalyses []estimator.Analysis `json:"task_analyses"`
	Source       model.Source         `json:"source"`
}

type suggestResp struct {
	Suggestions []model.Suggestion `json:"suggestions"`
	Source      model.Source       `json:"source"`
}

type scheduleResp struct {
	TimeBlocks   []model.TimeBlock `json:"time_blocks"`
	Source       model.Source      `json:"source"`
	Warnings     []string          `json:"warnings"`
	TotalMinutes int               `json:"total_minutes"`
}

func newScheduleResp(r schedule.Result) scheduleResp {
	return scheduleResp{
		TimeBlocks:   orEmpty(r.Blocks),
		Source:       r.Source,
		Warnings:     orEmpty(r.Warnings),
		TotalMinutes: r.TotalMinutes,
	}
}

// orEmpty renders nil slices as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
