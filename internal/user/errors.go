package user

import "errors"

// Domain errors
var (
	// ErrUserNotFound - no account matches the lookup
	ErrUserNotFound = errors.New("user: user not found")
)
