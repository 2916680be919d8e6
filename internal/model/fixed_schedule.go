package model

import "time"

// Fixed schedule priority levels.
const (
	FixedPriorityHigh   = 1
	FixedPriorityMedium = 2
	FixedPriorityLow    = 3
)

// FixedSchedule is an immovable commitment recurring on given weekdays.
type FixedSchedule struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	StartTime     string    `json:"start_time"` // HH:MM
	EndTime       string    `json:"end_time"`   // HH:MM
	DaysOfWeek    []int     `json:"days_of_week"`
	IsRecurring   bool      `json:"is_recurring"`
	PriorityLevel int       `json:"priority_level"`
	IsMovable     bool      `json:"is_movable"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ActiveOn reports whether the commitment applies on weekday (0=Sunday).
func (f FixedSchedule) ActiveOn(weekday int) bool {
	for _, d := range f.DaysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}
