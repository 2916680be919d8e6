package usecase

import (
	"context"
	"strings"

	"smart-daily-planner/internal/classifier"
	"smart-daily-planner/internal/correction"
	repo "smart-daily-planner/internal/correction/repository"
)

// Record appends a correction to the user's log, inferring the category
// when the caller did not supply one.
func (uc *implUseCase) Record(ctx context.Context, input correction.RecordInput) (correction.RecordOutput, error) {
	if input.UserID == "" {
		return correction.RecordOutput{}, correction.ErrUnauthorized
	}
	title := strings.TrimSpace(input.TaskTitle)
	if title == "" {
		return correction.RecordOutput{}, correction.ErrTitleRequired
	}
	if input.AIEstimatedDuration <= 0 || input.UserCorrectedDuration <= 0 {
		return correction.RecordOutput{}, correction.ErrInvalidDuration
	}

	category := strings.TrimSpace(input.TaskCategory)
	if category == "" {
		category = string(uc.classifier.Classify(ctx, classifier.Input{
			Title:       title,
			Description: input.TaskDescription,
		}))
	}

	c, err := uc.repo.CreateCorrection(ctx, repo.CreateCorrectionOptions{
		UserID:                input.UserID,
		TaskTitle:             title,
		TaskDescription:       input.TaskDescription,
		AIEstimatedDuration:   input.AIEstimatedDuration,
		UserCorrectedDuration: input.UserCorrectedDuration,
		CorrectionReason:      input.CorrectionReason,
		TaskCategory:          category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Record CreateCorrection: %v", err)
		return correction.RecordOutput{}, err
	}

	return correction.RecordOutput{Correction: c}, nil
}
