package approvalerrors

import (
	itemdecisionerrors "go-invmis/internal/itemdecision/errors"
	"go-invmis/internal/shared/apperror"
	"net/http"
)

var (
	ErrApprovalNotFound = apperror.New(
		apperror.CodeNotFound,
		"Approval not found",
		http.StatusNotFound,
	)

	ErrInvalidApprovalID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid approval ID",
		http.StatusBadRequest,
	)

	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)

	ErrApprovalExists = apperror.New(
		apperror.CodeConflict,
		"An approval already exists for this request",
		http.StatusConflict,
	)

	ErrUnknownAction         = apperror.Validation("Unknown action type")
	ErrInvalidRequestType    = apperror.Validation("Unknown request type")
	ErrCommentsRequired      = apperror.Validation("Comments are required to reject or return a request")
	ErrForwardTargetRequired = apperror.Validation("workflow_id and forwarded_to are required when forwarding to a workflow member")
	ErrForwardToSelf         = apperror.Validation("A request cannot be forwarded to its current approver")
	ErrTargetNotInWorkflow   = apperror.Validation("Selected user is not an approver of the selected workflow")
	ErrItemsRequired         = apperror.Validation("Items are required for a stock issuance request")
	ErrNoActiveWorkflow      = apperror.Validation("No active workflow is configured for this request type")
	ErrNoItemsOnRequest      = apperror.Validation("Request has no items to approve")

	ErrItemDecisionsIncomplete = itemdecisionerrors.ErrDecisionsIncomplete

	ErrPermissionDenied   = apperror.ErrPermissionDenied
	ErrNotCurrentApprover = apperror.ErrNotCurrentApprover
	ErrInvalidState       = apperror.ErrInvalidState
	ErrNoSupervisorFound  = apperror.ErrNoSupervisorFound
)
