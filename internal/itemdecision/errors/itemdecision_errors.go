package itemdecisionerrors

import (
	"go-invmis/internal/shared/apperror"
	"net/http"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Request item not found",
		http.StatusNotFound,
	)

	ErrInvalidApprovalID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid approval ID",
		http.StatusBadRequest,
	)

	ErrUnknownDecision = apperror.Validation("Unknown item decision")

	ErrDecisionsIncomplete = apperror.Validation("Please make a decision for each item before submitting")

	ErrApproverNameRequired = apperror.RequiredField("approver_name")

	ErrNegativeQuantity = apperror.Validation("Approved quantity cannot be negative")

	ErrNoItems = apperror.Validation("Request has no items to decide")
)
