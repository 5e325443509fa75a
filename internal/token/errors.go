package token

import "errors"

// Domain errors
var (
	// ErrUnauthenticated - issuing requires an authenticated session
	ErrUnauthenticated = errors.New("token: unauthenticated")

	// ErrTokenRequired - no token supplied
	ErrTokenRequired = errors.New("token: token is required")

	// ErrTokenExpired - token lifetime has passed
	ErrTokenExpired = errors.New("token: token expired")

	// ErrTokenInvalid - token failed verification for any other reason
	ErrTokenInvalid = errors.New("token: token invalid")

	// ErrRefreshTooEarly - token not yet inside the refresh window
	ErrRefreshTooEarly = errors.New("token: refresh not allowed yet")
)
