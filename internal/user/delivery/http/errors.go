package http

import (
	"errors"

	"auth-srv/internal/user"
	pkgErrors "auth-srv/pkg/errors"
)

var (
	errUserNotFound = pkgErrors.NewHTTPError(404, "User not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return errUserNotFound
	default:
		panic(err)
	}
}
