package fixedschedule

// Fields shared by create and update.
type Fields struct {
	Title         string
	Description   string
	StartTime     string
	EndTime       string
	DaysOfWeek    []int
	IsRecurring   bool
	PriorityLevel int
	IsMovable     bool
}

type CreateInput struct {
	UserID string
	Fields
}

// ListInput filters by weekday when Weekday is set.
type ListInput struct {
	UserID  string
	Weekday *int
}

// UpdateInput replaces every field of an existing entry.
type UpdateInput struct {
	UserID string
	ID     string
	Fields
}
