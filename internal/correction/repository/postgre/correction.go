package postgre

import (
	"context"
	"database/sql"
	"time"

	"smart-daily-planner/internal/correction/repository"
	"smart-daily-planner/internal/model"
)

const correctionColumns = `id, user_id, task_title, task_description, ai_estimated_duration,
	user_corrected_duration, correction_reason, task_category, created_at`

type correctionRow struct {
	ID                    string         `db:"id"`
	UserID                string         `db:"user_id"`
	TaskTitle             string         `db:"task_title"`
	TaskDescription       sql.NullString `db:"task_description"`
	AIEstimatedDuration   int            `db:"ai_estimated_duration"`
	UserCorrectedDuration int            `db:"user_corrected_duration"`
	CorrectionReason      sql.NullString `db:"correction_reason"`
	TaskCategory          string         `db:"task_category"`
	CreatedAt             time.Time      `db:"created_at"`
}

func (row correctionRow) toModel() model.DurationCorrection {
	return model.DurationCorrection{
		ID:                    row.ID,
		UserID:                row.UserID,
		TaskTitle:             row.TaskTitle,
		TaskDescription:       row.TaskDescription.String,
		AIEstimatedDuration:   row.AIEstimatedDuration,
		UserCorrectedDuration: row.UserCorrectedDuration,
		CorrectionReason:      row.CorrectionReason.String,
		TaskCategory:          row.TaskCategory,
		CreatedAt:             row.CreatedAt,
	}
}

// CreateCorrection appends a correction and returns the stored record.
func (r *implRepository) CreateCorrection(ctx context.Context, opt repository.CreateCorrectionOptions) (model.DurationCorrection, error) {
	const query = `
		INSERT INTO duration_corrections (user_id, task_title, task_description, ai_estimated_duration,
			user_corrected_duration, correction_reason, task_category, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7, NOW())
		RETURNING ` + correctionColumns

	var row correctionRow
	err := r.db.QueryRowxContext(ctx, query,
		opt.UserID, opt.TaskTitle, opt.TaskDescription, opt.AIEstimatedDuration,
		opt.UserCorrectedDuration, opt.CorrectionReason, opt.TaskCategory,
	).StructScan(&row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCorrection"), err)
		return model.DurationCorrection{}, repository.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// ListRecent returns up to opt.Limit corrections, newest first.
func (r *implRepository) ListRecent(ctx context.Context, opt repository.ListRecentOptions) ([]model.DurationCorrection, error) {
	const query = `SELECT ` + correctionColumns + `
		FROM duration_corrections
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var rows []correctionRow
	if err := r.db.SelectContext(ctx, &rows, query, opt.UserID, opt.Limit); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecent"), err)
		return nil, repository.ErrFailedToList
	}

	out := make([]model.DurationCorrection, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}
