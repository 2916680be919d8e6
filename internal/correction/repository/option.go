package repository

// CreateCorrectionOptions holds parameters for appending a correction.
type CreateCorrectionOptions struct {
	UserID                string
	TaskTitle             string
	TaskDescription       string
	AIEstimatedDuration   int
	UserCorrectedDuration int
	CorrectionReason      string
	TaskCategory          string
}

// ListRecentOptions limits the history window.
type ListRecentOptions struct {
	UserID string
	Limit  int
}
