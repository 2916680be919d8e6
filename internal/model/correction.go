package model

import "time"

// DefaultCategory is used when a correction or task has no category.
const DefaultCategory = "general"

// DurationCorrection records a user overriding an AI duration estimate.
// Records are append-only.
type DurationCorrection struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	TaskTitle             string    `json:"task_title"`
	TaskDescription       string    `json:"task_description,omitempty"`
	AIEstimatedDuration   int       `json:"ai_estimated_duration"`
	UserCorrectedDuration int       `json:"user_corrected_duration"`
	CorrectionReason      string    `json:"correction_reason,omitempty"`
	TaskCategory          string    `json:"task_category"`
	CreatedAt             time.Time `json:"created_at"`
}
