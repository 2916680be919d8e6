package http

import (
	"errors"
	"net/http"

	"smart-daily-planner/internal/task"
	pkgErrors "smart-daily-planner/pkg/errors"
)

var errIDRequired = errors.New("id is required")

// mapError translates task errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrUnauthorized):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidDueDate),
		errors.Is(err, task.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
