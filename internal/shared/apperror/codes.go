package apperror

const (
	// Client errors (4xx)
	CodeValidation    = "VALIDATION_ERROR"
	CodeBusinessLogic = "BUSINESS_LOGIC_ERROR"
	CodeUnauthorized  = "AUTHENTICATION_ERROR"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
