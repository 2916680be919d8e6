package plan

import (
	"smart-daily-planner/internal/estimator"
	"smart-daily-planner/internal/model"
)

// Plan listing bounds.
const (
	DefaultListLimit = 30
	MaxListLimit     = 100
)

// MaxTaskDuration caps a single task at one day.
const MaxTaskDuration = 1440

// --- Session inputs ---

type StartInput struct {
	UserID  string
	Date    string
	TaskIDs []string
}

type AdjustDurationInput struct {
	UserID    string
	SessionID string
	TaskID    string
	Duration  int
	Reason    string
}

type SetSuggestionInput struct {
	UserID    string
	SessionID string
	Index     int
	Accepted  bool
}

// SaveOutput is the stored plan and the session after the save.
type SaveOutput struct {
	Plan    model.DailyPlan
	Session model.PlanningSession
}

// --- Plan inputs ---

type ListPlansInput struct {
	UserID string
	Limit  int
}

// --- Stateless inputs ---

// EstimateInput asks for duration analyses outside a session. The user's
// correction history and fixed schedules are used when UserID is set.
type EstimateInput struct {
	UserID string
	Tasks  []estimator.Task
}

// ScheduleInput asks for a schedule outside a session. When Fixed is empty
// and UserID is set, the user's stored fixed schedules are merged.
type ScheduleInput struct {
	UserID      string
	Date        string
	Tasks       []ScheduleTask
	Suggestions []model.Suggestion
	Fixed       []model.FixedSchedule
}

// ScheduleTask is a task to place in a stateless schedule request.
type ScheduleTask struct {
	ID                string
	Title             string
	Priority          model.Priority
	EstimatedDuration int
	DueDate           string
}
