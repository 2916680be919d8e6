package http

import (
	"errors"
	"net/http"

	"smart-daily-planner/internal/estimator"
	"smart-daily-planner/internal/plan"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/internal/suggestion"
	pkgErrors "smart-daily-planner/pkg/errors"
)

var errInvalidIndex = errors.New("index must be a non-negative integer")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, plan.ErrUnauthorized):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, plan.ErrSessionNotFound),
		errors.Is(err, plan.ErrPlanNotFound),
		errors.Is(err, plan.ErrTaskNotInSession),
		errors.Is(err, plan.ErrSuggestionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, plan.ErrInvalidStage):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, plan.ErrNoTasks),
		errors.Is(err, plan.ErrInvalidDate),
		errors.Is(err, plan.ErrInvalidDuration),
		errors.Is(err, estimator.ErrNoTasks),
		errors.Is(err, suggestion.ErrNoTasks),
		errors.Is(err, schedule.ErrNoTasks),
		errors.Is(err, schedule.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
