package repository

import "errors"

var (
	// ErrNotFound - record does not exist
	ErrNotFound = errors.New("user repository: not found")
)
