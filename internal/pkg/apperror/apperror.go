package apperror

import "errors"

// AppError is an error carrying the HTTP status code it should surface as.
// Domain packages declare their failure modes as AppError sentinels so that
// handlers can reply without per-error switch statements.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 409)
	Message string // user-facing message
	Err     error  // underlying cause, never exposed to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a status code and message to an underlying error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// From extracts an AppError from anywhere in err's chain.
func From(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
