package errors

import "net/http"

const (
	// StatusUnauthorized is the status code for 401 errors.
	StatusUnauthorized = http.StatusUnauthorized
	// StatusForbidden is the status code for 403 errors.
	StatusForbidden = http.StatusForbidden
)

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageForbidden is the default message for 403.
	MessageForbidden = "Forbidden"
)
