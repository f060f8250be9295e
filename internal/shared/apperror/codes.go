package apperror

const (
	// Input errors
	CodeValidation   = "VALIDATION_ERROR"
	CodeParse        = "PARSE_ERROR"
	CodeInvalidState = "INVALID_STATE"

	// Environment errors
	CodeIO            = "IO_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// Process exit codes, one per error kind.
const (
	ExitInternal     = 1
	ExitValidation   = 2
	ExitParse        = 3
	ExitIO           = 4
	ExitInvalidState = 5
)
