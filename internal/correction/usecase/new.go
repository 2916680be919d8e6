package usecase

import (
	"smart-daily-planner/internal/classifier"
	"smart-daily-planner/internal/correction/repository"
	"smart-daily-planner/pkg/log"
)

const (
	// DefaultHistoryLimit is the window the estimator learns from.
	DefaultHistoryLimit = 20
	// DefaultListLimit caps GET /corrections.
	DefaultListLimit = 50
)

type implUseCase struct {
	repo         repository.Repository
	classifier   classifier.Classifier
	l            log.Logger
	historyLimit int
	listLimit    int
}

// New creates a new correction UseCase. Non-positive limits use the defaults.
func New(repo repository.Repository, cls classifier.Classifier, l log.Logger, historyLimit, listLimit int) *implUseCase {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	if cls == nil {
		cls = classifier.NewKeyword()
	}
	return &implUseCase{
		repo:         repo,
		classifier:   cls,
		l:            l,
		historyLimit: historyLimit,
		listLimit:    listLimit,
	}
}
