package usecase

import (
	"context"

	"smart-daily-planner/internal/correction"
	"smart-daily-planner/internal/estimator"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/internal/suggestion"
)

const adjustReason = "Manual adjustment during plan creation"

// AnalyzeDurations refines every selected task's duration and applies the
// estimates as the working durations.
func (uc *implUseCase) AnalyzeDurations(ctx context.Context, userID, sessionID string) (model.PlanningSession, error) {
	s, err := uc.load(ctx, userID, sessionID, plan.OpAnalyze)
	if err != nil {
		return model.PlanningSession{}, err
	}

	tasks := make([]estimator.Task, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = estimator.Task{
			ID:              t.ID,
			Title:           t.Title,
			Description:     t.Description,
			Priority:        t.Priority,
			CurrentDuration: t.Duration,
		}
	}

	out, err := uc.estimator.Estimate(ctx, estimator.Input{
		Tasks:    tasks,
		Patterns: uc.patterns(ctx, userID),
		Fixed:    s.Fixed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AnalyzeDurations Estimate: %v", err)
		return model.PlanningSession{}, err
	}

	s.Analyses = make([]model.TaskAnalysis, len(out.Analyses))
	for i, a := range out.Analyses {
		s.Analyses[i] = model.TaskAnalysis(a)
		if t, ok := s.Task(a.TaskID); ok {
			t.Duration = a.EstimatedMinutes
		}
	}
	s.AnalysisSource = out.Source

	if err := uc.advance(ctx, &s, plan.OpAnalyze); err != nil {
		return model.PlanningSession{}, err
	}
	return s, nil
}

// AdjustDuration sets a task's working duration. A value different from the
// task's stored estimate is logged as a correction; failing to log it does
// not fail the adjustment.
func (uc *implUseCase) AdjustDuration(ctx context.Context, input plan.AdjustDurationInput) (model.PlanningSession, error) {
	if input.Duration <= 0 || input.Duration > plan.MaxTaskDuration {
		return model.PlanningSession{}, plan.ErrInvalidDuration
	}
	s, err := uc.load(ctx, input.UserID, input.SessionID, plan.OpAdjust)
	if err != nil {
		return model.PlanningSession{}, err
	}

	t, ok := s.Task(input.TaskID)
	if !ok {
		return model.PlanningSession{}, plan.ErrTaskNotInSession
	}
	t.Duration = input.Duration

	if input.Duration != t.OriginalDuration {
		reason := input.Reason
		if reason == "" {
			reason = adjustReason
		}
		_, err := uc.correctionUC.Record(ctx, correction.RecordInput{
			UserID:                input.UserID,
			TaskTitle:             t.Title,
			TaskDescription:       t.Description,
			AIEstimatedDuration:   t.OriginalDuration,
			UserCorrectedDuration: input.Duration,
			CorrectionReason:      reason,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.AdjustDuration Record: %v", err)
		}
	}

	if err := uc.advance(ctx, &s, plan.OpAdjust); err != nil {
		return model.PlanningSession{}, err
	}
	return s, nil
}

// GenerateSuggestions replaces the session's suggestions with a fresh set,
// none accepted.
func (uc *implUseCase) GenerateSuggestions(ctx context.Context, userID, sessionID string) (model.PlanningSession, error) {
	s, err := uc.load(ctx, userID, sessionID, plan.OpSuggest)
	if err != nil {
		return model.PlanningSession{}, err
	}

	tasks := make([]suggestion.Task, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = suggestion.Task{
			Title:             t.Title,
			Description:       t.Description,
			Priority:          t.Priority,
			EstimatedDuration: t.Duration,
			DueDate:           t.DueDate,
		}
	}

	out, err := uc.suggester.Generate(ctx, suggestion.Input{Tasks: tasks, Date: s.Date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateSuggestions Generate: %v", err)
		return model.PlanningSession{}, err
	}
	s.Suggestions = out.Suggestions
	s.SuggestionSource = out.Source

	if err := uc.advance(ctx, &s, plan.OpSuggest); err != nil {
		return model.PlanningSession{}, err
	}
	return s, nil
}

func (uc *implUseCase) SetSuggestion(ctx context.Context, input plan.SetSuggestionInput) (model.PlanningSession, error) {
	s, err := uc.load(ctx, input.UserID, input.SessionID, plan.OpSetSuggestion)
	if err != nil {
		return model.PlanningSession{}, err
	}
	if input.Index < 0 || input.Index >= len(s.Suggestions) {
		return model.PlanningSession{}, plan.ErrSuggestionNotFound
	}
	s.Suggestions[input.Index].Accepted = input.Accepted

	if err := uc.advance(ctx, &s, plan.OpSetSuggestion); err != nil {
		return model.PlanningSession{}, err
	}
	return s, nil
}

// GenerateSchedule builds the day from the working durations, accepted
// suggestions and fixed schedules. It may run again to regenerate.
func (uc *implUseCase) GenerateSchedule(ctx context.Context, userID, sessionID string) (model.PlanningSession, error) {
	s, err := uc.load(ctx, userID, sessionID, plan.OpSchedule)
	if err != nil {
		return model.PlanningSession{}, err
	}

	tasks := make([]schedule.Task, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = schedule.Task{
			ID:                t.ID,
			Title:             t.Title,
			Priority:          t.Priority,
			EstimatedDuration: t.Duration,
			DueDate:           t.DueDate,
		}
	}

	res, err := uc.builder.Build(ctx, schedule.Input{
		Date:        s.Date,
		Tasks:       tasks,
		Suggestions: s.Suggestions,
		Fixed:       s.Fixed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateSchedule Build: %v", err)
		return model.PlanningSession{}, err
	}
	s.Blocks = res.Blocks
	s.ScheduleSource = res.Source
	s.Warnings = res.Warnings

	if err := uc.advance(ctx, &s, plan.OpSchedule); err != nil {
		return model.PlanningSession{}, err
	}
	return s, nil
}

// patterns returns nil for anonymous callers or when history is unavailable.
func (uc *implUseCase) patterns(ctx context.Context, userID string) *correction.Patterns {
	if userID == "" {
		return nil
	}
	p, err := uc.correctionUC.Patterns(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.patterns: %v", err)
		return nil
	}
	return p
}
