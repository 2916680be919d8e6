package schedule

import (
	"fmt"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/wallclock"
)

// Task is the part of a task the builder schedules.
type Task struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Priority          model.Priority `json:"priority"`
	EstimatedDuration int            `json:"estimated_duration"`
	DueDate           string         `json:"due_date,omitempty"`
}

// Input is one schedule request. Fixed may hold every commitment of the
// user; only those active on Date's weekday are merged.
type Input struct {
	Date        string
	Tasks       []Task
	Suggestions []model.Suggestion
	Fixed       []model.FixedSchedule
}

// Result is the merged, start-ordered schedule.
type Result struct {
	Blocks       []model.TimeBlock `json:"time_blocks"`
	Source       model.Source      `json:"source"`
	Warnings     []string          `json:"warnings"`
	TotalMinutes int               `json:"total_minutes"`
}

// Config bounds the workday. Zero values use 09:00-18:00.
type Config struct {
	DayStart int
	DayEnd   int
}

type payload struct {
	TimeBlocks []model.TimeBlock `json:"timeBlocks"`
}

// Validate normalises every block in place. One unusable block makes the
// whole payload malformed.
func (p *payload) Validate() error {
	if len(p.TimeBlocks) == 0 {
		return errEmptyTimeBlocks
	}
	for i := range p.TimeBlocks {
		b := &p.TimeBlocks[i]
		span, err := wallclock.NewSpan(b.StartTime, b.EndTime)
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if span.End <= span.Start {
			return fmt.Errorf("block %d: end %s is not after start %s", i, b.EndTime, b.StartTime)
		}
		b.StartTime = wallclock.Format(span.Start)
		b.EndTime = wallclock.Format(span.End)
		b.Duration = span.Duration()
		b.IsFixed = false
	}
	return nil
}
