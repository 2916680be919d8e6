package correction

import "smart-daily-planner/internal/model"

// CategoryPattern is the running mean of corrected/estimated for one category.
type CategoryPattern struct {
	AvgMultiplier float64 `json:"avg_multiplier"`
	Count         int     `json:"count"`
}

// Patterns summarises a user's correction history.
type Patterns struct {
	Categories       map[string]CategoryPattern `json:"category_patterns"`
	RecentTrend      float64                    `json:"recent_trend"`
	TotalCorrections int                        `json:"total_corrections"`
}

// --- UseCase Inputs ---

type RecordInput struct {
	UserID                string
	TaskTitle             string
	TaskDescription       string
	AIEstimatedDuration   int
	UserCorrectedDuration int
	CorrectionReason      string
	// TaskCategory is inferred by the classifier when empty.
	TaskCategory string
}

type ListInput struct {
	UserID string
	Limit  int
}

// --- UseCase Outputs ---

type RecordOutput struct {
	Correction model.DurationCorrection
}

type ListOutput struct {
	Corrections []model.DurationCorrection
	Patterns    *Patterns
}
