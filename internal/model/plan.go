package model

import "time"

// Reserved task ids for non-task blocks.
const (
	TaskIDBreak = "break"
	TaskIDLunch = "lunch"
)

// TimeBlock is one scheduled slot of the day.
type TimeBlock struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	TaskTitle string `json:"task_title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Duration  int    `json:"duration"`
	IsFixed   bool   `json:"is_fixed"`
}

// IsTask reports whether the block schedules a real task rather than a
// break, lunch or fixed commitment.
func (b TimeBlock) IsTask() bool {
	return !b.IsFixed && b.TaskID != "" && b.TaskID != TaskIDBreak && b.TaskID != TaskIDLunch
}

// SuggestionType classifies an optimization suggestion.
type SuggestionType string

const (
	SuggestionReorder   SuggestionType = "reorder"
	SuggestionBreak     SuggestionType = "break"
	SuggestionFocusTime SuggestionType = "focus_time"
)

// Valid reports whether t is a known suggestion type.
func (t SuggestionType) Valid() bool {
	switch t {
	case SuggestionReorder, SuggestionBreak, SuggestionFocusTime:
		return true
	}
	return false
}

// Suggestion is an advisory produced for the user to accept or reject.
type Suggestion struct {
	Type        SuggestionType `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Accepted    bool           `json:"accepted"`
}

// PlanStatus is the lifecycle of a stored daily plan.
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
)

// DailyPlan is the persisted plan for one user and date.
type DailyPlan struct {
	ID                string       `json:"id"`
	UserID            string       `json:"user_id"`
	PlanDate          string       `json:"plan_date"` // YYYY-MM-DD
	Title             string       `json:"title"`
	TotalTasks        int          `json:"total_tasks"`
	EstimatedDuration int          `json:"estimated_duration"`
	Status            PlanStatus   `json:"status"`
	AISuggestions     []Suggestion `json:"ai_suggestions"`
	TimeBlocks        []TimeBlock  `json:"time_blocks"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// PlanTaskAssignment records when a task was scheduled inside a plan.
type PlanTaskAssignment struct {
	PlanID             string `json:"plan_id"`
	TaskID             string `json:"task_id"`
	ScheduledStartTime string `json:"scheduled_start_time"`
	ScheduledEndTime   string `json:"scheduled_end_time"`
	EstimatedDuration  int    `json:"estimated_duration"`
	AIOptimized        bool   `json:"ai_optimized"`
}

// Source tells whether a result came from the generative service or from
// the local fallback.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)
