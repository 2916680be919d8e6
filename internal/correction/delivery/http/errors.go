package http

import (
	"errors"
	"net/http"

	"smart-daily-planner/internal/correction"
	pkgErrors "smart-daily-planner/pkg/errors"
)

var errInvalidLimit = errors.New("limit must be a positive number")

// mapError translates correction errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, correction.ErrUnauthorized):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, correction.ErrTitleRequired),
		errors.Is(err, correction.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
