package workflowerrors

import (
	"go-invmis/internal/shared/apperror"
	"net/http"
)

var (
	ErrWorkflowNotFound = apperror.New(
		apperror.CodeNotFound,
		"Workflow not found",
		http.StatusNotFound,
	)

	ErrInvalidWorkflowID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid workflow ID",
		http.StatusBadRequest,
	)

	ErrWorkflowNameExists = apperror.New(
		apperror.CodeConflict,
		"A workflow with the same name already exists",
		http.StatusConflict,
	)

	ErrWorkflowInUse = apperror.New(
		apperror.CodeConflict,
		"Workflow is referenced by approvals; deactivate it instead",
		http.StatusConflict,
	)

	ErrApproverExists = apperror.New(
		apperror.CodeConflict,
		"User is already an approver in this workflow",
		http.StatusConflict,
	)

	ErrApproverNotFound = apperror.New(
		apperror.CodeNotFound,
		"Approver not found in this workflow",
		http.StatusNotFound,
	)

	ErrApproverWithoutCapability = apperror.Validation(
		"Approver must have at least one of can_approve, can_forward or can_finalize",
	)
)
