package estimator

import (
	"smart-daily-planner/internal/correction"
	"smart-daily-planner/internal/model"
)

// Task is the part of a task the estimator looks at.
type Task struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	Priority        model.Priority `json:"priority"`
	CurrentDuration int            `json:"current_duration"`
}

// Input is one estimation request. Patterns and Fixed are optional context.
type Input struct {
	Tasks    []Task
	Patterns *correction.Patterns
	Fixed    []model.FixedSchedule
}

// Analysis is the refined estimate for one task.
type Analysis struct {
	TaskID           string `json:"task_id"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	Reasoning        string `json:"reasoning"`
	VariabilityNote  string `json:"variability_note"`
	Category         string `json:"category"`
}

// Output holds one analysis per input task, in input order.
type Output struct {
	Analyses []Analysis
	Source   model.Source
}

type payload struct {
	TaskAnalyses []Analysis `json:"task_analyses"`
}

func (p *payload) Validate() error {
	for _, a := range p.TaskAnalyses {
		if a.EstimatedMinutes <= 0 {
			return errNonPositiveEstimate
		}
	}
	return nil
}

type fixedContext struct {
	Title      string `json:"title"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	DaysOfWeek []int  `json:"days_of_week"`
}
