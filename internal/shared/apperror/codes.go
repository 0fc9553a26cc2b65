package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput       = "INVALID_INPUT"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodePermissionDenied   = "PERMISSION_DENIED"
	CodeNotCurrentApprover = "NOT_CURRENT_APPROVER"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidState       = "INVALID_STATE"
	CodeNoSupervisorFound  = "NO_SUPERVISOR_FOUND"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeNetworkError       = "NETWORK_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
