package coach

import (
	"strings"

	"smart-daily-planner/internal/model"
)

// Task is the part of a task shown to the coach.
type Task struct {
	Title    string
	Priority model.Priority
	Status   model.TaskStatus
	DueDate  string
}

type Note struct {
	Title   string
	Content string
}

type SummaryInput struct {
	Notes []Note
}

type Summary struct {
	Summary     string       `json:"summary"`
	KeyPoints   []string     `json:"key_points"`
	Connections []string     `json:"connections"`
	Tips        []string     `json:"tips"`
	Source      model.Source `json:"source"`
}

// AdviceInput may be empty; the coach then gives general advice.
type AdviceInput struct {
	Tasks []Task
	Notes []Note
}

type Advice struct {
	Tips   []string     `json:"tips"`
	Source model.Source `json:"source"`
}

type summaryPayload struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"key_points"`
	Connections []string `json:"connections"`
	Tips        []string `json:"tips"`
}

// Validate trims every field. A blank summary is malformed.
func (p *summaryPayload) Validate() error {
	p.Summary = strings.TrimSpace(p.Summary)
	if p.Summary == "" {
		return errEmptySummary
	}
	p.KeyPoints = clean(p.KeyPoints, 0)
	p.Connections = clean(p.Connections, 0)
	p.Tips = clean(p.Tips, MaxSummaryTips)
	return nil
}

type advicePayload struct {
	Tips []string `json:"tips"`
}

// Validate drops blank tips and keeps at most MaxTips.
func (p *advicePayload) Validate() error {
	p.Tips = clean(p.Tips, MaxTips)
	if len(p.Tips) == 0 {
		return errNoTips
	}
	return nil
}

// clean trims items, drops blanks and truncates to limit when limit > 0.
func clean(items []string, limit int) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
