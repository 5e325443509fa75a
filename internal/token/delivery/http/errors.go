package http

import (
	"errors"

	"auth-srv/internal/token"
	pkgErrors "auth-srv/pkg/errors"
)

var (
	errUnauthenticated = pkgErrors.NewHTTPError(401, "Authentication required")
	errTokenRequired   = pkgErrors.NewHTTPError(400, "Token is required")
	errTokenExpired    = pkgErrors.NewHTTPError(401, "Token has expired")
	errTokenInvalid    = pkgErrors.NewHTTPError(401, "Token is invalid")
	errRefreshTooEarly = pkgErrors.NewHTTPError(400, "Token is not yet eligible for refresh")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, token.ErrUnauthenticated):
		return errUnauthenticated
	case errors.Is(err, token.ErrTokenRequired):
		return errTokenRequired
	case errors.Is(err, token.ErrTokenExpired):
		return errTokenExpired
	case errors.Is(err, token.ErrTokenInvalid):
		return errTokenInvalid
	case errors.Is(err, token.ErrRefreshTooEarly):
		return errRefreshTooEarly
	default:
		panic(err)
	}
}
