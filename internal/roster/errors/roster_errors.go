package rostererrors

import (
	"go-roster/internal/shared/apperror"
)

var (
	ErrEmptyRoster = apperror.New(
		apperror.CodeInvalidState,
		"roster is empty, nothing to export",
		apperror.ExitInvalidState,
	)
	ErrMissingHeader = apperror.New(
		apperror.CodeParse,
		"roster file has no header row",
		apperror.ExitParse,
	)
	ErrUnexpectedColumns = apperror.New(
		apperror.CodeParse,
		"roster file must have 5 or 6 columns: full name, position, hire date, salary, sex[, premium]",
		apperror.ExitParse,
	)
	ErrMalformedRow = apperror.New(
		apperror.CodeParse,
		"malformed roster row",
		apperror.ExitParse,
	)
	ErrInvalidFullName = apperror.New(
		apperror.CodeParse,
		"full name must be 'Last First [Middle]'",
		apperror.ExitParse,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeParse,
		"salary must be an integer",
		apperror.ExitParse,
	)
	ErrInvalidPremium = apperror.New(
		apperror.CodeParse,
		"premium must be an integer",
		apperror.ExitParse,
	)
	ErrInvalidFileName = apperror.New(
		apperror.CodeValidation,
		"file name must be non-empty and must not contain path separators",
		apperror.ExitValidation,
	)
	ErrUnknownFormat = apperror.New(
		apperror.CodeValidation,
		"unknown export format, expected json or csv",
		apperror.ExitValidation,
	)
	ErrUnknownOperation = apperror.New(
		apperror.CodeValidation,
		"unknown payroll operation",
		apperror.ExitValidation,
	)
)
