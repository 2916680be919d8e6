package http

import (
	"errors"
	"net/http"

	"smart-daily-planner/internal/coach"
	"smart-daily-planner/internal/insight"
	pkgErrors "smart-daily-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, insight.ErrUnauthorized):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, insight.ErrNotesNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, insight.ErrNoNotesSelected),
		errors.Is(err, coach.ErrNoNotes):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
