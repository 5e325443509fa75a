package http

import (
	"errors"

	"auth-srv/internal/auth"
	pkgErrors "auth-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(400, "Invalid request body")
	errInvalidCredentials = pkgErrors.NewHTTPError(401, "Invalid email or password")
	errSessionNotFound    = pkgErrors.NewHTTPError(401, "Session not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, auth.ErrSessionNotFound):
		return errSessionNotFound
	default:
		panic(err)
	}
}
