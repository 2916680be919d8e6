package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/pkg/wallclock"
)

// StartSession loads the selected tasks and the weekday's fixed schedules
// and opens a session in the select stage.
func (uc *implUseCase) StartSession(ctx context.Context, input plan.StartInput) (model.PlanningSession, error) {
	if input.UserID == "" {
		return model.PlanningSession{}, plan.ErrUnauthorized
	}
	weekday, err := wallclock.Weekday(input.Date)
	if err != nil {
		return model.PlanningSession{}, plan.ErrInvalidDate
	}
	if len(input.TaskIDs) == 0 {
		return model.PlanningSession{}, plan.ErrNoTasks
	}

	var (
		tasks []model.Task
		fixed []model.FixedSchedule
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = uc.taskUC.GetByIDs(gctx, input.UserID, input.TaskIDs)
		return err
	})
	g.Go(func() error {
		var err error
		fixed, err = uc.fixedUC.List(gctx, fixedschedule.ListInput{UserID: input.UserID, Weekday: &weekday})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.StartSession load: %v", err)
		return model.PlanningSession{}, err
	}
	if len(tasks) == 0 {
		return model.PlanningSession{}, plan.ErrNoTasks
	}

	now := uc.now()
	s := model.PlanningSession{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Date:      input.Date,
		Stage:     model.StageSelect,
		Tasks:     make([]model.SessionTask, len(tasks)),
		Fixed:     fixed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i, t := range tasks {
		duration := t.EstimatedDuration
		if duration <= 0 {
			duration = model.DefaultEstimatedDuration
		}
		s.Tasks[i] = model.SessionTask{
			ID:               t.ID,
			Title:            t.Title,
			Description:      t.Description,
			Priority:         t.Priority,
			DueDate:          t.DueDate,
			OriginalDuration: duration,
			Duration:         duration,
		}
	}

	if err := uc.sessions.Put(ctx, s); err != nil {
		uc.l.Errorf(ctx, "uc.StartSession Put: %v", err)
		return model.PlanningSession{}, err
	}
	return s, nil
}

func (uc *implUseCase) GetSession(ctx context.Context, userID, sessionID string) (model.PlanningSession, error) {
	return uc.getOwned(ctx, userID, sessionID)
}

// getOwned returns the session only to its owner.
func (uc *implUseCase) getOwned(ctx context.Context, userID, sessionID string) (model.PlanningSession, error) {
	if userID == "" {
		return model.PlanningSession{}, plan.ErrUnauthorized
	}
	s, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned Get: %v", err)
		return model.PlanningSession{}, err
	}
	if s.ID == "" || s.UserID != userID {
		return model.PlanningSession{}, plan.ErrSessionNotFound
	}
	return s, nil
}

// load fetches the session and checks that op may run from its stage.
func (uc *implUseCase) load(ctx context.Context, userID, sessionID string, op plan.Operation) (model.PlanningSession, error) {
	s, err := uc.getOwned(ctx, userID, sessionID)
	if err != nil {
		return model.PlanningSession{}, err
	}
	if !plan.CanRun(s.Stage, op) {
		return model.PlanningSession{}, fmt.Errorf("%w: %s from %s", plan.ErrInvalidStage, op, s.Stage)
	}
	return s, nil
}

// advance moves the session past op and stores it.
func (uc *implUseCase) advance(ctx context.Context, s *model.PlanningSession, op plan.Operation) error {
	s.Stage = plan.Next(s.Stage, op)
	s.UpdatedAt = uc.now()
	if err := uc.sessions.Put(ctx, *s); err != nil {
		uc.l.Errorf(ctx, "uc.advance %s Put: %v", op, err)
		return err
	}
	return nil
}
