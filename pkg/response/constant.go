package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"
	// DefaultErrorMessage is the outward message for unexpected failures.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500
	// ValidationErrorCode is the error code for request validation failures.
	ValidationErrorCode = 400

	// DateTimeFormat is the human-readable datetime format used in responses.
	DateTimeFormat = "2006-01-02 15:04:05"

	// DefaultStackTraceDepth bounds captured stack traces in bug reports.
	DefaultStackTraceDepth = 16
	// DiscordMaxMessageLen is the Discord message length limit.
	DiscordMaxMessageLen = 1900
)
