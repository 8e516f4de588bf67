package output

import "errors"

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitConflict    = 3
)

// ExitError is an error with the exit code the CLI should return.
// Message is what the user sees; Cause is kept for errors.Is and errors.As.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError reports a mistake in the invocation: an unknown kind, field or flag value.
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewSystemError reports a failure outside the user's control, such as an
// unreadable settings file or a storage error. cause may be nil.
func NewSystemError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// NewConflictError reports that the vault already holds a document with the
// requested name. cause may be nil.
func NewConflictError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitConflict, Message: message, Cause: cause}
}

// IsConflict reports whether err, or anything it wraps, is a conflict.
func IsConflict(err error) bool {
	return GetExitCode(err) == ExitConflict
}

// GetExitCode returns the exit code for err. Errors without a code are user errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}

// asExitError returns err as an ExitError, treating uncoded errors as user errors.
func asExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return NewUserError(err.Error())
}
