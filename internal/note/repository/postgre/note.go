package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"smart-daily-planner/internal/model"
	repo "smart-daily-planner/internal/note/repository"
)

const noteColumns = `id, user_id, title, content, COALESCE(task_id::text, '') AS task_id, created_at, updated_at`

type noteRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	TaskID    string    `db:"task_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row noteRow) toModel() model.Note {
	return model.Note{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Content:   row.Content,
		TaskID:    row.TaskID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toModels(rows []noteRow) []model.Note {
	notes := make([]model.Note, len(rows))
	for i, row := range rows {
		notes[i] = row.toModel()
	}
	return notes
}

func (r *implRepository) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (model.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, content, task_id, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, NOW(), NOW())
		RETURNING ` + noteColumns

	var row noteRow
	err := r.db.QueryRowxContext(ctx, query, opt.UserID, opt.Title, opt.Content, opt.TaskID).StructScan(&row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOneNote returns a zero-value Note when not found.
func (r *implRepository) GetOneNote(ctx context.Context, opt repo.GetOneNoteOptions) (model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2 LIMIT 1`

	var row noteRow
	err := r.db.GetContext(ctx, &row, query, opt.ID, opt.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneNote"), err)
		return model.Note{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

func (r *implRepository) ListNotes(ctx context.Context, opt repo.ListNotesOptions) ([]model.Note, int, error) {
	where, args := buildListWhere(opt)

	var total int
	if err := r.db.GetContext(ctx, &total, fmt.Sprintf("SELECT COUNT(*) FROM notes WHERE %s", where), args...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListNotes"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := buildListQuery(opt)
	var rows []noteRow
	if err := r.db.SelectContext(ctx, &rows, fmt.Sprintf(`SELECT %s FROM notes %s`, noteColumns, mods), args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return toModels(rows), total, nil
}

func (r *implRepository) ListNotesByIDs(ctx context.Context, opt repo.ListNotesByIDsOptions) ([]model.Note, error) {
	if len(opt.IDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 AND id::text = ANY($2)`

	var rows []noteRow
	if err := r.db.SelectContext(ctx, &rows, query, opt.UserID, pq.Array(opt.IDs)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotesByIDs"), err)
		return nil, repo.ErrFailedToList
	}
	return toModels(rows), nil
}

// UpdateNote returns a zero-value Note when not found.
func (r *implRepository) UpdateNote(ctx context.Context, opt repo.UpdateNoteOptions) (model.Note, error) {
	query := `
		UPDATE notes
		SET title = $1, content = $2, task_id = NULLIF($3, '')::uuid, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING ` + noteColumns

	var row noteRow
	err := r.db.QueryRowxContext(ctx, query, opt.Title, opt.Content, opt.TaskID, opt.ID, opt.UserID).StructScan(&row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNote"), err)
		return model.Note{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteNote reports whether a row was removed.
func (r *implRepository) DeleteNote(ctx context.Context, opt repo.DeleteNoteOptions) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNote"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("DeleteNote"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
