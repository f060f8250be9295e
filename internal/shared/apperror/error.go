package apperror

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code     string // Error code (e.g., VALIDATION_ERROR)
	Message  string // User-friendly message
	ExitCode int    // Process exit code
	Err      error  // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, exitCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
		Err:      nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, exitCode int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
		Err:      err,
	}
}

// IsCode reports whether the outermost AppError in err's chain carries code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ExitCodeOf returns the exit code for err, ExitInternal for foreign errors.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.ExitCode != 0 {
		return appErr.ExitCode
	}
	return ErrInternal.ExitCode
}

// AsAppError returns err's AppError, or ErrInternal wrapping err when the
// chain carries none.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message, ErrInternal.ExitCode)
}
