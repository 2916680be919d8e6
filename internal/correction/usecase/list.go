package usecase

import (
	"context"

	"smart-daily-planner/internal/correction"
	repo "smart-daily-planner/internal/correction/repository"
)

// List returns the newest corrections together with the patterns derived
// from them.
func (uc *implUseCase) List(ctx context.Context, input correction.ListInput) (correction.ListOutput, error) {
	if input.UserID == "" {
		return correction.ListOutput{}, correction.ErrUnauthorized
	}
	limit := input.Limit
	if limit <= 0 || limit > uc.listLimit {
		limit = uc.listLimit
	}

	list, err := uc.repo.ListRecent(ctx, repo.ListRecentOptions{UserID: input.UserID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListRecent: %v", err)
		return correction.ListOutput{}, err
	}

	return correction.ListOutput{
		Corrections: list,
		Patterns:    correction.Analyze(list),
	}, nil
}

// Patterns implements correction.UseCase.
func (uc *implUseCase) Patterns(ctx context.Context, userID string) (*correction.Patterns, error) {
	if userID == "" {
		return nil, nil
	}

	list, err := uc.repo.ListRecent(ctx, repo.ListRecentOptions{UserID: userID, Limit: uc.historyLimit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Patterns ListRecent: %v", err)
		return nil, err
	}
	return correction.Analyze(list), nil
}
