package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"smart-daily-planner/internal/fixedschedule/repository"
	"smart-daily-planner/internal/model"
)

const fixedColumns = `id, user_id, title, description, start_time, end_time, days_of_week,
	is_recurring, priority_level, is_movable, created_at, updated_at`

type fixedRow struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	StartTime     string         `db:"start_time"`
	EndTime       string         `db:"end_time"`
	DaysOfWeek    pq.Int64Array  `db:"days_of_week"`
	IsRecurring   bool           `db:"is_recurring"`
	PriorityLevel int            `db:"priority_level"`
	IsMovable     bool           `db:"is_movable"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (row fixedRow) toModel() model.FixedSchedule {
	days := make([]int, len(row.DaysOfWeek))
	for i, d := range row.DaysOfWeek {
		days[i] = int(d)
	}
	return model.FixedSchedule{
		ID:            row.ID,
		UserID:        row.UserID,
		Title:         row.Title,
		Description:   row.Description.String,
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		DaysOfWeek:    days,
		IsRecurring:   row.IsRecurring,
		PriorityLevel: row.PriorityLevel,
		IsMovable:     row.IsMovable,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func toInt64Array(days []int) pq.Int64Array {
	out := make(pq.Int64Array, len(days))
	for i, d := range days {
		out[i] = int64(d)
	}
	return out
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.FixedSchedule, error) {
	query := `
		INSERT INTO fixed_schedule_tasks (user_id, title, description, start_time, end_time, days_of_week,
			is_recurring, priority_level, is_movable, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + fixedColumns

	var row fixedRow
	err := r.db.QueryRowxContext(ctx, query,
		opt.UserID, opt.Title, opt.Description, opt.StartTime, opt.EndTime, toInt64Array(opt.DaysOfWeek),
		opt.IsRecurring, opt.PriorityLevel, opt.IsMovable,
	).StructScan(&row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.FixedSchedule{}, repository.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// List returns the user's entries ordered by start time.
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.FixedSchedule, error) {
	query := `SELECT ` + fixedColumns + ` FROM fixed_schedule_tasks WHERE user_id = $1`
	args := []any{opt.UserID}
	if opt.Weekday != nil {
		query += ` AND $2 = ANY(days_of_week)`
		args = append(args, *opt.Weekday)
	}
	query += ` ORDER BY start_time ASC`

	var rows []fixedRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repository.ErrFailedToList
	}

	out := make([]model.FixedSchedule, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

func (r *implRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.FixedSchedule, error) {
	query := `
		UPDATE fixed_schedule_tasks
		SET title = $1, description = NULLIF($2, ''), start_time = $3, end_time = $4, days_of_week = $5,
			is_recurring = $6, priority_level = $7, is_movable = $8, updated_at = NOW()
		WHERE id = $9 AND user_id = $10
		RETURNING ` + fixedColumns

	var row fixedRow
	err := r.db.QueryRowxContext(ctx, query,
		opt.Title, opt.Description, opt.StartTime, opt.EndTime, toInt64Array(opt.DaysOfWeek),
		opt.IsRecurring, opt.PriorityLevel, opt.IsMovable, opt.ID, opt.UserID,
	).StructScan(&row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.FixedSchedule{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.FixedSchedule{}, repository.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, opt repository.DeleteOptions) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fixed_schedule_tasks WHERE id = $1 AND user_id = $2`, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return false, repository.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("Delete"), err)
		return false, repository.ErrFailedToDelete
	}
	return n > 0, nil
}
