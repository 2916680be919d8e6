package suggestion

import "smart-daily-planner/internal/model"

// Task is the part of a task shown to the model.
type Task struct {
	Title             string         `json:"title"`
	Description       string         `json:"description,omitempty"`
	Priority          model.Priority `json:"priority"`
	EstimatedDuration int            `json:"estimated_duration"`
	DueDate           string         `json:"due_date,omitempty"`
}

// Input is one suggestion request for Date (YYYY-MM-DD).
type Input struct {
	Tasks []Task
	Date  string
}

// Output carries 1 to 5 suggestions, none accepted yet.
type Output struct {
	Suggestions []model.Suggestion
	Source      model.Source
}

type payload struct {
	Suggestions []model.Suggestion `json:"suggestions"`
}

// Validate drops unknown types, truncates to MaxSuggestions and resets
// Accepted. An empty result is malformed.
func (p *payload) Validate() error {
	kept := p.Suggestions[:0]
	for _, s := range p.Suggestions {
		if !s.Type.Valid() {
			continue
		}
		s.Accepted = false
		kept = append(kept, s)
		if len(kept) == MaxSuggestions {
			break
		}
	}
	if len(kept) == 0 {
		return errNoValidSuggestions
	}
	p.Suggestions = kept
	return nil
}
