package repository

// CreateOptions holds a validated, normalised entry.
type CreateOptions struct {
	UserID        string
	Title         string
	Description   string
	StartTime     string
	EndTime       string
	DaysOfWeek    []int
	IsRecurring   bool
	PriorityLevel int
	IsMovable     bool
}

// ListOptions filters by weekday when Weekday is set.
type ListOptions struct {
	UserID  string
	Weekday *int
}

type UpdateOptions struct {
	ID string
	CreateOptions
}

type DeleteOptions struct {
	ID     string
	UserID string
}
