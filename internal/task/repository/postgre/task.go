package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"smart-daily-planner/internal/model"
	repo "smart-daily-planner/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, priority, status,
	COALESCE(to_char(due_date, 'YYYY-MM-DD'), '') AS due_date, estimated_duration, created_at, updated_at`

type taskRow struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	Title             string         `db:"title"`
	Description       sql.NullString `db:"description"`
	Priority          string         `db:"priority"`
	Status            string         `db:"status"`
	DueDate           string         `db:"due_date"`
	EstimatedDuration int            `db:"estimated_duration"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (row taskRow) toModel() model.Task {
	return model.Task{
		ID:                row.ID,
		UserID:            row.UserID,
		Title:             row.Title,
		Description:       row.Description.String,
		Priority:          model.Priority(row.Priority),
		Status:            model.TaskStatus(row.Status),
		DueDate:           row.DueDate,
		EstimatedDuration: row.EstimatedDuration,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func toModels(rows []taskRow) []model.Task {
	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks
}

// CreateTask inserts a new pending task and returns it.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, description, priority, status, due_date, estimated_duration, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, 'pending', NULLIF($5, '')::date, $6, NOW(), NOW())
		RETURNING ` + taskColumns

	var row taskRow
	err := r.db.QueryRowxContext(ctx, query,
		opt.UserID, opt.Title, opt.Description, opt.Priority, opt.DueDate, opt.EstimatedDuration,
	).StructScan(&row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOneTask returns a zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2 LIMIT 1`

	var row taskRow
	err := r.db.GetContext(ctx, &row, query, opt.ID, opt.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListTasks returns a page of tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := r.buildListWhere(opt)

	var total int
	if err := r.db.GetContext(ctx, &total, fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where), args...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return toModels(rows), total, nil
}

// ListTasksByIDs returns the user's tasks among opt.IDs in no particular order.
func (r *implRepository) ListTasksByIDs(ctx context.Context, opt repo.ListTasksByIDsOptions) ([]model.Task, error) {
	if len(opt.IDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 AND id::text = ANY($2)`

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, opt.UserID, pq.Array(opt.IDs)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasksByIDs"), err)
		return nil, repo.ErrFailedToList
	}
	return toModels(rows), nil
}

// UpdateTask overwrites a task and returns it; zero value when not found.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := `
		UPDATE tasks
		SET title = $1, description = NULLIF($2, ''), priority = $3, status = $4,
			due_date = NULLIF($5, '')::date, estimated_duration = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING ` + taskColumns

	var row taskRow
	err := r.db.QueryRowxContext(ctx, query,
		opt.Title, opt.Description, opt.Priority, opt.Status, opt.DueDate, opt.EstimatedDuration, opt.ID, opt.UserID,
	).StructScan(&row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteTask removes a task of the user.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
