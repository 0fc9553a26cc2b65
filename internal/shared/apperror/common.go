package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrPermissionDenied = New(
		CodePermissionDenied,
		"You do not have the capability required for this action",
		http.StatusForbidden,
	)

	ErrNotCurrentApprover = New(
		CodeNotCurrentApprover,
		"Only the current approver can act on this request",
		http.StatusConflict,
	)

	ErrInvalidState = New(
		CodeInvalidState,
		"The request is not awaiting action",
		http.StatusConflict,
	)

	ErrNoSupervisorFound = New(
		CodeNoSupervisorFound,
		"No supervisor is configured for this user",
		http.StatusUnprocessableEntity,
	)

	ErrNetwork = New(
		CodeNetworkError,
		"Upstream service is unreachable",
		http.StatusBadGateway,
	)
)

// Validation builds a VALIDATION_ERROR with a field-specific message.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func RequiredField(field string) *AppError {
	return Validation(field + " is required")
}

func InvalidField(field string) *AppError {
	return Validation(field + " is invalid")
}
