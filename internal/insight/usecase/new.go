package usecase

import (
	"smart-daily-planner/internal/coach"
	"smart-daily-planner/internal/note"
	"smart-daily-planner/internal/task"
	"smart-daily-planner/pkg/log"
)

type implUseCase struct {
	l      log.Logger
	taskUC task.UseCase
	noteUC note.UseCase
	coach  coach.Generator
}

// New creates the insight UseCase.
func New(l log.Logger, taskUC task.UseCase, noteUC note.UseCase, gen coach.Generator) *implUseCase {
	return &implUseCase{
		l:      l,
		taskUC: taskUC,
		noteUC: noteUC,
		coach:  gen,
	}
}
