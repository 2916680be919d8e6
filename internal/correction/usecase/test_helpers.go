package usecase

import (
	"context"

	"smart-daily-planner/internal/correction/repository"
	"smart-daily-planner/internal/model"
)

type mockRepo struct {
	created   []repository.CreateCorrectionOptions
	stored    []model.DurationCorrection
	lastLimit int
	err       error
}

func (m *mockRepo) CreateCorrection(_ context.Context, opt repository.CreateCorrectionOptions) (model.DurationCorrection, error) {
	if m.err != nil {
		return model.DurationCorrection{}, m.err
	}
	m.created = append(m.created, opt)
	return model.DurationCorrection{
		ID:                    "c-1",
		UserID:                opt.UserID,
		TaskTitle:             opt.TaskTitle,
		AIEstimatedDuration:   opt.AIEstimatedDuration,
		UserCorrectedDuration: opt.UserCorrectedDuration,
		TaskCategory:          opt.TaskCategory,
	}, nil
}

func (m *mockRepo) ListRecent(_ context.Context, opt repository.ListRecentOptions) ([]model.DurationCorrection, error) {
	m.lastLimit = opt.Limit
	if m.err != nil {
		return nil, m.err
	}
	if len(m.stored) > opt.Limit {
		return m.stored[:opt.Limit], nil
	}
	return m.stored, nil
}
