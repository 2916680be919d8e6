package usecase

import (
	"time"

	"smart-daily-planner/internal/correction"
	"smart-daily-planner/internal/estimator"
	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/internal/plan/repository"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/internal/suggestion"
	"smart-daily-planner/internal/task"
	pkgLog "smart-daily-planner/pkg/log"
)

type implUseCase struct {
	l            pkgLog.Logger
	sessions     repository.SessionRepository
	plans        repository.PlanRepository
	taskUC       task.UseCase
	fixedUC      fixedschedule.UseCase
	correctionUC correction.UseCase
	estimator    estimator.Estimator
	suggester    suggestion.Generator
	builder      schedule.Builder
	publisher    plan.Publisher
	now          func() time.Time
}

var _ plan.UseCase = (*implUseCase)(nil)

// New creates a new plan UseCase. publisher may be nil.
func New(
	l pkgLog.Logger,
	sessions repository.SessionRepository,
	plans repository.PlanRepository,
	taskUC task.UseCase,
	fixedUC fixedschedule.UseCase,
	correctionUC correction.UseCase,
	est estimator.Estimator,
	suggester suggestion.Generator,
	builder schedule.Builder,
	publisher plan.Publisher,
) *implUseCase {
	return &implUseCase{
		l:            l,
		sessions:     sessions,
		plans:        plans,
		taskUC:       taskUC,
		fixedUC:      fixedUC,
		correctionUC: correctionUC,
		estimator:    est,
		suggester:    suggester,
		builder:      builder,
		publisher:    publisher,
		now:          time.Now,
	}
}
