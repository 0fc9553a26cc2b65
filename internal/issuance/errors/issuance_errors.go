package issuanceerrors

import (
	"go-invmis/internal/shared/apperror"
	"net/http"
)

var (
	ErrFailureNotFound = apperror.New(
		apperror.CodeNotFound,
		"Issuance failure not found",
		http.StatusNotFound,
	)

	ErrInvalidFailureID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid issuance failure ID",
		http.StatusBadRequest,
	)

	ErrFailureAlreadyResolved = apperror.New(
		apperror.CodeConflict,
		"Issuance failure is already resolved",
		http.StatusConflict,
	)

	ErrInvalidEvent = apperror.New(
		apperror.CodeInvalidInput,
		"Approval event is missing its approval or request id",
		http.StatusBadRequest,
	)

	ErrInventoryRejected = apperror.New(
		apperror.CodeInvalidState,
		"Inventory service rejected the request",
		http.StatusUnprocessableEntity,
	)

	ErrInsufficientStock = apperror.New(
		apperror.CodeInvalidState,
		"No wing or admin stock can cover the allocation",
		http.StatusUnprocessableEntity,
	)
)
