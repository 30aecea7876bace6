// Package output provides structured output and error handling for the hunt CLI.
package output

import "errors"

// Exit codes:
// 0 = Success
// 1 = User error (bad args, unknown role/member/hunt, invalid handoff)
// 2 = System error (gh failed, I/O error)
// 3 = Conflict (duplicate member, full roster, document exists)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitConflict    = 3
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// UserError creates an error for caller mistakes (exit code 1).
// Use for: bad arguments, unknown roles, invalid handoffs, missing hunts.
func UserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// UserErrorWithCause creates a user error wrapping an underlying cause.
func UserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message, Cause: cause}
}

// SystemError creates an error for system failures (exit code 2).
// Use for: gh invocation failures, I/O errors.
func SystemError(message string) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message}
}

// SystemErrorWithCause creates a system error wrapping an underlying cause.
func SystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// ConflictError creates an error for conflicts (exit code 3).
// Use for: duplicate roster entries, already-initialized projects.
func ConflictError(message string) *ExitError {
	return &ExitError{Code: ExitConflict, Message: message}
}

// ConflictErrorWithCause creates a conflict error wrapping an underlying cause.
func ConflictErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitConflict, Message: message, Cause: cause}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
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
