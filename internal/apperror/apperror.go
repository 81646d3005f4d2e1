package apperror

import "errors"

type Error struct {
	Code     string
	Message  string
	ExitCode int
	Internal error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Internal
}

var (
	ErrInvalidParameter = &Error{
		Code:     "invalid_parameter",
		Message:  "Invalid generation parameters",
		ExitCode: 2,
	}

	ErrIOFailure = &Error{
		Code:     "io_failure",
		Message:  "The destination could not be written",
		ExitCode: 3,
	}

	ErrUnexpected = &Error{
		Code:     "unexpected",
		Message:  "An unexpected error occurred during generation",
		ExitCode: 4,
	}
)

func New(code, message string, exitCode int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
	}
}

func Wrap(err error, appErr *Error) *Error {
	return &Error{
		Code:     appErr.Code,
		Message:  appErr.Message,
		ExitCode: appErr.ExitCode,
		Internal: err,
	}
}

func WrapWithMessage(err error, appErr *Error, message string) *Error {
	return &Error{
		Code:     appErr.Code,
		Message:  message,
		ExitCode: appErr.ExitCode,
		Internal: err,
	}
}

func Is(err error, target *Error) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == target.Code
	}
	return false
}

func Code(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrUnexpected.Code
}

func ExitCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}
	return ErrUnexpected.ExitCode
}

func SafeMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ErrUnexpected.Message
}
