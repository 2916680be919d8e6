package http

import (
	"errors"
	"net/http"

	"smart-daily-planner/internal/note"
	pkgErrors "smart-daily-planner/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, note.ErrUnauthorized):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, note.ErrNoteNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, note.ErrTitleRequired),
		errors.Is(err, note.ErrContentTooLong),
		errors.Is(err, note.ErrInvalidTaskID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
