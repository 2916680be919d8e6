package http

import (
	"errors"
	"net/http"

	"smart-daily-planner/internal/fixedschedule"
	pkgErrors "smart-daily-planner/pkg/errors"
)

var errIDRequired = errors.New("id is required")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, fixedschedule.ErrUnauthorized):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, fixedschedule.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, fixedschedule.ErrTitleRequired),
		errors.Is(err, fixedschedule.ErrInvalidTime),
		errors.Is(err, fixedschedule.ErrInvalidTimeRange),
		errors.Is(err, fixedschedule.ErrInvalidWeekday),
		errors.Is(err, fixedschedule.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
