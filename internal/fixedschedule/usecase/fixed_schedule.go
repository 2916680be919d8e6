package usecase

import (
	"context"

	"github.com/google/uuid"

	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/internal/fixedschedule/repository"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/pkg/wallclock"
)

func (uc *implUseCase) Create(ctx context.Context, input fixedschedule.CreateInput) (model.FixedSchedule, error) {
	if input.UserID == "" {
		return model.FixedSchedule{}, fixedschedule.ErrUnauthorized
	}
	opt, err := normalize(input.UserID, input.Fields)
	if err != nil {
		return model.FixedSchedule{}, err
	}

	f, err := uc.repo.Create(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Create: %v", err)
		return model.FixedSchedule{}, err
	}
	return f, nil
}

// List returns the user's entries, only those active on input.Weekday when set.
func (uc *implUseCase) List(ctx context.Context, input fixedschedule.ListInput) ([]model.FixedSchedule, error) {
	if input.UserID == "" {
		return nil, fixedschedule.ErrUnauthorized
	}
	if input.Weekday != nil && !wallclock.ValidWeekday(*input.Weekday) {
		return nil, fixedschedule.ErrInvalidWeekday
	}

	list, err := uc.repo.List(ctx, repository.ListOptions{UserID: input.UserID, Weekday: input.Weekday})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return nil, err
	}
	return list, nil
}

func (uc *implUseCase) Update(ctx context.Context, input fixedschedule.UpdateInput) (model.FixedSchedule, error) {
	if input.UserID == "" {
		return model.FixedSchedule{}, fixedschedule.ErrUnauthorized
	}
	if _, err := uuid.Parse(input.ID); err != nil {
		return model.FixedSchedule{}, fixedschedule.ErrNotFound
	}
	opt, err := normalize(input.UserID, input.Fields)
	if err != nil {
		return model.FixedSchedule{}, err
	}

	f, err := uc.repo.Update(ctx, repository.UpdateOptions{ID: input.ID, CreateOptions: opt})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update Update: %v", err)
		return model.FixedSchedule{}, err
	}
	if f.ID == "" {
		return model.FixedSchedule{}, fixedschedule.ErrNotFound
	}
	return f, nil
}

func (uc *implUseCase) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return fixedschedule.ErrUnauthorized
	}
	if _, err := uuid.Parse(id); err != nil {
		return fixedschedule.ErrNotFound
	}
	deleted, err := uc.repo.Delete(ctx, repository.DeleteOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete Delete: %v", err)
		return err
	}
	if !deleted {
		return fixedschedule.ErrNotFound
	}
	return nil
}
