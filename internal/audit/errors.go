package audit

import "errors"

var (
	// ErrInvalidAction - unknown audit action filter
	ErrInvalidAction = errors.New("audit: invalid action")
)
