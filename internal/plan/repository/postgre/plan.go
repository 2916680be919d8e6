package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan/repository"
)

type planRow struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	PlanDate          string         `db:"plan_date"`
	Title             string         `db:"title"`
	TotalTasks        int            `db:"total_tasks"`
	EstimatedDuration int            `db:"estimated_duration"`
	Status            string         `db:"status"`
	AISuggestions     types.JSONText `db:"ai_suggestions"`
	TimeBlocks        types.JSONText `db:"time_blocks"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (row planRow) toModel() (model.DailyPlan, error) {
	p := model.DailyPlan{
		ID:                row.ID,
		UserID:            row.UserID,
		PlanDate:          row.PlanDate,
		Title:             row.Title,
		TotalTasks:        row.TotalTasks,
		EstimatedDuration: row.EstimatedDuration,
		Status:            model.PlanStatus(row.Status),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
	if len(row.AISuggestions) > 0 {
		if err := row.AISuggestions.Unmarshal(&p.AISuggestions); err != nil {
			return model.DailyPlan{}, fmt.Errorf("ai_suggestions: %w", err)
		}
	}
	if len(row.TimeBlocks) > 0 {
		if err := row.TimeBlocks.Unmarshal(&p.TimeBlocks); err != nil {
			return model.DailyPlan{}, fmt.Errorf("time_blocks: %w", err)
		}
	}
	return p, nil
}

type assignmentRow struct {
	PlanID             string `db:"daily_plan_id"`
	TaskID             string `db:"task_id"`
	ScheduledStartTime string `db:"scheduled_start_time"`
	ScheduledEndTime   string `db:"scheduled_end_time"`
	EstimatedDuration  int    `db:"estimated_duration"`
	AIOptimized        bool   `db:"ai_optimized"`
}

func toJSONText(v any) (types.JSONText, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return types.JSONText(b), nil
}

func (r *implRepository) Upsert(ctx context.Context, opt repository.UpsertOptions) (model.DailyPlan, error) {
	p := opt.Plan
	if p.AISuggestions == nil {
		p.AISuggestions = []model.Suggestion{}
	}
	if p.TimeBlocks == nil {
		p.TimeBlocks = []model.TimeBlock{}
	}
	suggestions, err := toJSONText(p.AISuggestions)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal suggestions: %v", r.dsn("Upsert"), err)
		return model.DailyPlan{}, repository.ErrFailedToUpsert
	}
	blocks, err := toJSONText(p.TimeBlocks)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal blocks: %v", r.dsn("Upsert"), err)
		return model.DailyPlan{}, repository.ErrFailedToUpsert
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Upsert"), err)
		return model.DailyPlan{}, repository.ErrFailedToUpsert
	}
	defer func() { _ = tx.Rollback() }()

	var row planRow
	err = tx.QueryRowxContext(ctx, upsertPlanQuery,
		p.UserID, p.PlanDate, p.Title, p.TotalTasks, p.EstimatedDuration, string(p.Status), suggestions, blocks,
	).StructScan(&row)
	if err != nil {
		r.l.Errorf(ctx, "%s insert plan: %v", r.dsn("Upsert"), err)
		return model.DailyPlan{}, repository.ErrFailedToUpsert
	}

	if _, err := tx.ExecContext(ctx, deleteAssignmentsQuery, row.ID); err != nil {
		r.l.Errorf(ctx, "%s delete assignments: %v", r.dsn("Upsert"), err)
		return model.DailyPlan{}, repository.ErrFailedToUpsert
	}

	if len(opt.Assignments) > 0 {
		rows := make([]assignmentRow, len(opt.Assignments))
		for i, a := range opt.Assignments {
			rows[i] = assignmentRow{
				PlanID:             row.ID,
				TaskID:             a.TaskID,
				ScheduledStartTime: a.ScheduledStartTime,
				ScheduledEndTime:   a.ScheduledEndTime,
				EstimatedDuration:  a.EstimatedDuration,
				AIOptimized:        a.AIOptimized,
			}
		}
		if _, err := tx.NamedExecContext(ctx, insertAssignmentsQuery, rows); err != nil {
			r.l.Errorf(ctx, "%s insert assignments: %v", r.dsn("Upsert"), err)
			return model.DailyPlan{}, repository.ErrFailedToUpsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Upsert"), err)
		return model.DailyPlan{}, repository.ErrFailedToUpsert
	}

	saved, err := row.toModel()
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("Upsert"), err)
		return model.DailyPlan{}, repository.ErrFailedToUpsert
	}
	return saved, nil
}

func (r *implRepository) GetByDate(ctx context.Context, opt repository.GetByDateOptions) (model.DailyPlan, error) {
	var row planRow
	err := r.db.GetContext(ctx, &row, getByDateQuery, opt.UserID, opt.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DailyPlan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByDate"), err)
		return model.DailyPlan{}, repository.ErrFailedToGet
	}

	p, err := row.toModel()
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetByDate"), err)
		return model.DailyPlan{}, repository.ErrFailedToGet
	}
	return p, nil
}

// List returns the user's plans, most recent date first.
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.DailyPlan, error) {
	var rows []planRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, opt.UserID, opt.Limit); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repository.ErrFailedToList
	}

	out := make([]model.DailyPlan, 0, len(rows))
	for _, row := range rows {
		p, err := row.toModel()
		if err != nil {
			r.l.Errorf(ctx, "%s decode %s: %v", r.dsn("List"), row.ID, err)
			return nil, repository.ErrFailedToList
		}
		out = append(out, p)
	}
	return out, nil
}
