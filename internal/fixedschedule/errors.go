package fixedschedule

import "errors"

var (
	ErrNotFound         = errors.New("fixed schedule not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidTime      = errors.New("start_time and end_time must be HH:MM")
	ErrInvalidTimeRange = errors.New("end_time must be after start_time")
	ErrInvalidWeekday   = errors.New("days_of_week must hold values 0 (Sunday) to 6 (Saturday)")
	ErrInvalidPriority  = errors.New("priority_level must be 1, 2 or 3")
)
