package employeeerrors

import (
	"go-roster/internal/shared/apperror"
)

var (
	ErrLastNameTooShort = apperror.New(
		apperror.CodeValidation,
		"last name must be at least 2 letters long",
		apperror.ExitValidation,
	)
	ErrLastNameAlphabet = apperror.New(
		apperror.CodeValidation,
		"last name must be written in Cyrillic letters",
		apperror.ExitValidation,
	)
	ErrFirstNameTooShort = apperror.New(
		apperror.CodeValidation,
		"first name must be at least 2 letters long",
		apperror.ExitValidation,
	)
	ErrFirstNameAlphabet = apperror.New(
		apperror.CodeValidation,
		"first name must be written in Cyrillic letters",
		apperror.ExitValidation,
	)
	ErrMiddleNameTooShort = apperror.New(
		apperror.CodeValidation,
		"middle name must be at least 3 letters long",
		apperror.ExitValidation,
	)
	ErrMiddleNameAlphabet = apperror.New(
		apperror.CodeValidation,
		"middle name must be written in Cyrillic letters",
		apperror.ExitValidation,
	)
	ErrPositionTooShort = apperror.New(
		apperror.CodeValidation,
		"position must be at least 2 characters long",
		apperror.ExitValidation,
	)
	ErrInvalidHireDateFormat = apperror.New(
		apperror.CodeParse,
		"invalid hire date format, expected DD.MM.YYYY",
		apperror.ExitParse,
	)
	ErrHireDateOutOfRange = apperror.New(
		apperror.CodeValidation,
		"hire date must be between 01.01.2000 and today",
		apperror.ExitValidation,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeValidation,
		"salary cannot be negative",
		apperror.ExitValidation,
	)
	ErrInvalidSex = apperror.New(
		apperror.CodeValidation,
		"sex must be М or Ж",
		apperror.ExitValidation,
	)
	ErrNegativePremium = apperror.New(
		apperror.CodeValidation,
		"premium cannot be negative",
		apperror.ExitValidation,
	)
)
