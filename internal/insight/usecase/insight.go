package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"smart-daily-planner/internal/coach"
	"smart-daily-planner/internal/insight"
	"smart-daily-planner/internal/model"
	"smart-daily-planner/internal/note"
	"smart-daily-planner/internal/task"
)

func (uc *implUseCase) Summarize(ctx context.Context, input insight.SummarizeInput) (coach.Summary, error) {
	if input.UserID == "" {
		return coach.Summary{}, insight.ErrUnauthorized
	}
	if len(input.NoteIDs) == 0 {
		return coach.Summary{}, insight.ErrNoNotesSelected
	}

	notes, err := uc.noteUC.GetByIDs(ctx, input.UserID, input.NoteIDs)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summarize GetByIDs: %v", err)
		return coach.Summary{}, err
	}
	if len(notes) == 0 {
		return coach.Summary{}, insight.ErrNotesNotFound
	}

	return uc.coach.Summarize(ctx, coach.SummaryInput{Notes: toCoachNotes(notes)})
}

// Advise fills empty task and note lists of a signed-in caller concurrently.
// A failed load leaves its list empty.
func (uc *implUseCase) Advise(ctx context.Context, input insight.AdviseInput) (coach.Advice, error) {
	if input.UserID != "" && (len(input.Tasks) == 0 || len(input.Notes) == 0) {
		g, gctx := errgroup.WithContext(ctx)
		if len(input.Tasks) == 0 {
			g.Go(func() error {
				input.Tasks = uc.openTasks(gctx, input.UserID)
				return nil
			})
		}
		if len(input.Notes) == 0 {
			g.Go(func() error {
				input.Notes = uc.recentNotes(gctx, input.UserID)
				return nil
			})
		}
		_ = g.Wait()
	}

	return uc.coach.Advise(ctx, coach.AdviceInput{Tasks: input.Tasks, Notes: input.Notes})
}

func (uc *implUseCase) openTasks(ctx context.Context, userID string) []coach.Task {
	out, err := uc.taskUC.List(ctx, task.ListTasksInput{UserID: userID, Limit: insight.AdviceTaskLimit})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Advise List tasks: %v", err)
		return nil
	}
	tasks := make([]coach.Task, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		if t.Status == model.TaskStatusCompleted {
			continue
		}
		tasks = append(tasks, coach.Task{Title: t.Title, Priority: t.Priority, Status: t.Status, DueDate: t.DueDate})
	}
	return tasks
}

func (uc *implUseCase) recentNotes(ctx context.Context, userID string) []coach.Note {
	out, err := uc.noteUC.List(ctx, note.ListInput{UserID: userID, Limit: insight.AdviceNoteLimit})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Advise List notes: %v", err)
		return nil
	}
	return toCoachNotes(out.Notes)
}

func toCoachNotes(notes []model.Note) []coach.Note {
	out := make([]coach.Note, len(notes))
	for i, n := range notes {
		out[i] = coach.Note{Title: n.Title, Content: n.Content}
	}
	return out
}
