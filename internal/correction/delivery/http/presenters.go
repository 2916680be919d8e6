package http

import (
	"time"

	"smart-daily-planner/internal/correction"
	"smart-daily-planner/internal/model"
)

// --- Request DTOs ---

type recordReq struct {
	TaskTitle             string `json:"task_title"              binding:"required,max=255"`
	TaskDescription       string `json:"task_description"        binding:"max=2000"`
	AIEstimatedDuration   int    `json:"ai_estimated_duration"   binding:"required"`
	UserCorrectedDuration int    `json:"user_corrected_duration" binding:"required"`
	CorrectionReason      string `json:"correction_reason"       binding:"max=1000"`
	TaskCategory          string `json:"task_category"           binding:"max=50"`
}

func (r recordReq) validate() error { return nil }

func (r recordReq) toInput(userID string) correction.RecordInput {
	return correction.RecordInput{
		UserID:                userID,
		TaskTitle:             r.TaskTitle,
		TaskDescription:       r.TaskDescription,
		AIEstimatedDuration:   r.AIEstimatedDuration,
		UserCorrectedDuration: r.UserCorrectedDuration,
		CorrectionReason:      r.CorrectionReason,
		TaskCategory:          r.TaskCategory,
	}
}

type listReq struct {
	Limit int `form:"limit"`
}

func (r listReq) validate() error {
	if r.Limit < 0 {
		return errInvalidLimit
	}
	return nil
}

func (r listReq) toInput(userID string) correction.ListInput {
	return correction.ListInput{UserID: userID, Limit: r.Limit}
}

// --- Response DTOs ---

type correctionResp struct {
	ID                    string    `json:"id"`
	TaskTitle             string    `json:"task_title"`
	TaskDescription       string    `json:"task_description,omitempty"`
	AIEstimatedDuration   int       `json:"ai_estimated_duration"`
	UserCorrectedDuration int       `json:"user_corrected_duration"`
	CorrectionReason      string    `json:"correction_reason,omitempty"`
	TaskCategory          string    `json:"task_category"`
	CreatedAt             time.Time `json:"created_at"`
}

func newCorrectionResp(c model.DurationCorrection) correctionResp {
	return correctionResp{
		ID:                    c.ID,
		TaskTitle:             c.TaskTitle,
		TaskDescription:       c.TaskDescription,
		AIEstimatedDuration:   c.AIEstimatedDuration,
		UserCorrectedDuration: c.UserCorrectedDuration,
		CorrectionReason:      c.CorrectionReason,
		TaskCategory:          c.TaskCategory,
		CreatedAt:             c.CreatedAt,
	}
}

type recordResp struct {
	Correction correctionResp `json:"correction"`
}

func (h *handler) newRecordResp(out correction.RecordOutput) recordResp {
	return recordResp{Correction: newCorrectionResp(out.Correction)}
}

type listResp struct {
	Corrections []correctionResp     `json:"corrections"`
	Patterns    *correction.Patterns `json:"patterns"`
}

func (h *handler) newListResp(out correction.ListOutput) listResp {
	items := make([]correctionResp, len(out.Corrections))
	for i, c := range out.Corrections {
		items[i] = newCorrectionResp(c)
	}
	return listResp{Corrections: items, Patterns: out.Patterns}
}
