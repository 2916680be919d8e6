package usecase

import (
	"context"
	"fmt"

	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/internal/plan/repository"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/pkg/wallclock"
)

const layoutPlanTitle = "02/01/2006"

// Save stores the session's schedule as the user's plan for the date and
// records when each selected task was scheduled.
func (uc *implUseCase) Save(ctx context.Context, userID, sessionID string) (plan.SaveOutput, error) {
	s, err := uc.load(ctx, userID, sessionID, plan.OpSave)
	if err != nil {
		return plan.SaveOutput{}, err
	}

	title, err := planTitle(s.Date)
	if err != nil {
		return plan.SaveOutput{}, plan.ErrInvalidDate
	}

	saved, err := uc.plans.Upsert(ctx, repository.UpsertOptions{
		Plan: model.DailyPlan{
			UserID:            s.UserID,
			PlanDate:          s.Date,
			Title:             title,
			TotalTasks:        len(s.Tasks),
			EstimatedDuration: schedule.TotalMinutes(s.Blocks),
			Status:            model.PlanStatusActive,
			AISuggestions:     s.Suggestions,
			TimeBlocks:        s.Blocks,
		},
		Assignments: assignments(s),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save Upsert: %v", err)
		return plan.SaveOutput{}, err
	}

	s.PlanID = saved.ID
	if err := uc.advance(ctx, &s, plan.OpSave); err != nil {
		return plan.SaveOutput{}, err
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, saved); err != nil {
			uc.l.Warnf(ctx, "uc.Save Publish: %v", err)
		}
	}

	return plan.SaveOutput{Plan: saved, Session: s}, nil
}

func planTitle(date string) (string, error) {
	d, err := wallclock.ParseDate(date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Plan for %s", d.Format(layoutPlanTitle)), nil
}

// assignments lists the blocks that schedule one of the session's tasks.
func assignments(s model.PlanningSession) []model.PlanTaskAssignment {
	var out []model.PlanTaskAssignment
	for _, b := range s.Blocks {
		if !b.IsTask() {
			continue
		}
		if _, ok := s.Task(b.TaskID); !ok {
			continue
		}
		out = append(out, model.PlanTaskAssignment{
			TaskID:             b.TaskID,
			ScheduledStartTime: b.StartTime,
			ScheduledEndTime:   b.EndTime,
			EstimatedDuration:  b.Duration,
			AIOptimized:        s.ScheduleSource == model.SourceAI,
		})
	}
	return out
}
