package approval

import approvalerrors "go-invmis/internal/approval/errors"

// Status is the state of an approval record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusFinalized Status = "finalized"
	StatusReturned  Status = "returned"

	// StatusForwarded never appears on a record. Dashboards use it for
	// requests the viewer passed on that are now pending with someone else.
	StatusForwarded Status = "forwarded"
)

var AllStatuses = []Status{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusForwarded,
	StatusReturned,
	StatusFinalized,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusFinalized, StatusReturned, StatusForwarded:
		return true
	}
	return false
}

// ActionType is what an approver does to a pending record.
type ActionType string

const (
	ActionForward  ActionType = "forward"
	ActionApprove  ActionType = "approve"
	ActionReject   ActionType = "reject"
	ActionFinalize ActionType = "finalize"
	ActionReturn   ActionType = "return"
)

var AllActions = []ActionType{ActionForward, ActionApprove, ActionReject, ActionReturn, ActionFinalize}

// ParseAction accepts both the verb and the history label ("approved").
func ParseAction(s string) (ActionType, error) {
	switch s {
	case "forward", "forwarded":
		return ActionForward, nil
	case "approve", "approved":
		return ActionApprove, nil
	case "reject", "rejected":
		return ActionReject, nil
	case "finalize", "finalized":
		return ActionFinalize, nil
	case "return", "returned":
		return ActionReturn, nil
	}
	return "", approvalerrors.ErrUnknownAction
}

// HistoryAction is the label written to approval_history.
type HistoryAction string

const (
	HistorySubmitted HistoryAction = "submitted"
	HistoryForwarded HistoryAction = "forwarded"
	HistoryApproved  HistoryAction = "approved"
	HistoryRejected  HistoryAction = "rejected"
	HistoryFinalized HistoryAction = "finalized"
	HistoryReturned  HistoryAction = "returned"
)

func (a ActionType) HistoryLabel() HistoryAction {
	switch a {
	case ActionForward:
		return HistoryForwarded
	case ActionApprove:
		return HistoryApproved
	case ActionReject:
		return HistoryRejected
	case ActionFinalize:
		return HistoryFinalized
	case ActionReturn:
		return HistoryReturned
	}
	return ""
}

// Next is the transition table. Only pending records accept actions; a
// forward keeps the record pending under the new approver.
func Next(from Status, action ActionType) (Status, error) {
	if from != StatusPending {
		return from, approvalerrors.ErrInvalidState
	}

	switch action {
	case ActionForward:
		return StatusPending, nil
	case ActionApprove:
		return StatusApproved, nil
	case ActionReject:
		return StatusRejected, nil
	case ActionFinalize:
		return StatusFinalized, nil
	case ActionReturn:
		return StatusReturned, nil
	}
	return from, approvalerrors.ErrUnknownAction
}

type ForwardingType string

const (
	// ForwardApproval routes to the actor's supervisor.
	ForwardApproval ForwardingType = "approval"
	// ForwardAction routes to a named member of a workflow.
	ForwardAction ForwardingType = "action"
)

type ScopeType string

const (
	ScopeIndividual     ScopeType = "individual"
	ScopeOrganizational ScopeType = "organizational"
)

type RequestType string

const (
	RequestStockIssuance RequestType = "stock_issuance"
	RequestTender        RequestType = "tender"
	RequestProcurement   RequestType = "procurement"
	RequestAssetDisposal RequestType = "asset_disposal"
)

func (r RequestType) Valid() bool {
	switch r {
	case RequestStockIssuance, RequestTender, RequestProcurement, RequestAssetDisposal:
		return true
	}
	return false
}

// HasItems reports whether the request carries per-item decisions.
func (r RequestType) HasItems() bool {
	return r == RequestStockIssuance
}
