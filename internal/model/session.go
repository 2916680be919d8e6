package model

import "time"

// SessionStage is the step a planning session has reached.
type SessionStage string

const (
	StageSelect   SessionStage = "select"
	StageOptimize SessionStage = "optimize"
	StageSchedule SessionStage = "schedule"
	StageReview   SessionStage = "review"
)

// SessionTask is a selected task with its working duration.
// OriginalDuration is the stored estimate when the session started.
type SessionTask struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Priority         Priority `json:"priority"`
	DueDate          string   `json:"due_date,omitempty"`
	OriginalDuration int      `json:"original_duration"`
	Duration         int      `json:"duration"`
}

// TaskAnalysis is a refined duration estimate for one task.
type TaskAnalysis struct {
	TaskID           string `json:"task_id"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	Reasoning        string `json:"reasoning"`
	VariabilityNote  string `json:"variability_note"`
	Category         string `json:"category"`
}

// PlanningSession holds the working state of one user planning one date.
type PlanningSession struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Date             string          `json:"date"`
	Stage            SessionStage    `json:"stage"`
	Tasks            []SessionTask   `json:"tasks"`
	Fixed            []FixedSchedule `json:"fixed"`
	Analyses         []TaskAnalysis  `json:"analyses,omitempty"`
	AnalysisSource   Source          `json:"analysis_source,omitempty"`
	Suggestions      []Suggestion    `json:"suggestions,omitempty"`
	SuggestionSource Source          `json:"suggestion_source,omitempty"`
	Blocks           []TimeBlock     `json:"blocks,omitempty"`
	ScheduleSource   Source          `json:"schedule_source,omitempty"`
	Warnings         []string        `json:"warnings,omitempty"`
	PlanID           string          `json:"plan_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Task returns the selected task with id, or false.
func (s *PlanningSession) Task(id string) (*SessionTask, bool) {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i], true
		}
	}
	return nil, false
}
