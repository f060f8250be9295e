package apperror

import "fmt"

var (
	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		ExitInternal,
	)

	ErrInvalidInput = New(
		CodeValidation,
		"The provided input is invalid",
		ExitValidation,
	)
)

// RequiredField reports a missing mandatory field.
func RequiredField(field string) *AppError {
	return New(CodeValidation, fmt.Sprintf("%s is required", field), ExitValidation)
}

// InvalidField reports a field whose value failed validation.
func InvalidField(field string) *AppError {
	return New(CodeValidation, fmt.Sprintf("%s is invalid", field), ExitValidation)
}

// Validation wraps err as a validation-class error.
func Validation(err error, message string) *AppError {
	return Wrap(err, CodeValidation, message, ExitValidation)
}

// Parse wraps err as a parse-class error.
func Parse(err error, message string) *AppError {
	return Wrap(err, CodeParse, message, ExitParse)
}

// IO wraps err as an I/O-class error.
func IO(err error, message string) *AppError {
	return Wrap(err, CodeIO, message, ExitIO)
}
