package usecase

import (
	"smart-daily-planner/internal/fixedschedule/repository"
	"smart-daily-planner/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new fixed schedule UseCase.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
