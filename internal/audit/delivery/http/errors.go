package http

import (
	"errors"

	"auth-srv/internal/audit"
	pkgErrors "auth-srv/pkg/errors"
)

var (
	errInvalidAction = pkgErrors.NewHTTPError(400, "Unknown audit action")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, audit.ErrInvalidAction):
		return errInvalidAction
	default:
		panic(err)
	}
}
