package auth

import "errors"

// Domain errors
var (
	// ErrInvalidCredentials - email or password does not match
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrSessionNotFound - session id unknown or expired
	ErrSessionNotFound = errors.New("auth: session not found")
)
