package approval

import approvalerrors "go-invmis/internal/approval/errors"

// Capabilities mirrors the flags on a workflow approver row.
type Capabilities struct {
	CanApprove  bool
	CanForward  bool
	CanFinalize bool
}

// DefaultCapabilities apply to an approver that has no row in the record's
// workflow and was reached through the supervisor chain: on submission or by
// approval-mode forwarding. An actor reached by action-mode forwarding was a
// workflow member when targeted; once that row is gone they hold nothing.
var DefaultCapabilities = Capabilities{CanApprove: true, CanForward: true}

type AuthorizationPolicy struct{}

// Can checks, in order: the record is pending, the actor is its current
// approver, and the actor holds the capability the action needs.
func (p AuthorizationPolicy) Can(actorID string, caps Capabilities, a Approval, action ActionType) error {
	if err := p.CheckTurn(actorID, a); err != nil {
		return err
	}

	var allowed bool
	switch action {
	case ActionForward:
		allowed = caps.CanForward
	case ActionApprove, ActionReject, ActionReturn:
		allowed = caps.CanApprove
	case ActionFinalize:
		allowed = caps.CanFinalize
	default:
		return approvalerrors.ErrUnknownAction
	}
	if !allowed {
		return approvalerrors.ErrPermissionDenied
	}
	return nil
}

// CheckTurn is the capability-independent half of Can.
func (AuthorizationPolicy) CheckTurn(actorID string, a Approval) error {
	if a.CurrentStatus != StatusPending {
		return approvalerrors.ErrInvalidState
	}
	if a.CurrentApproverID == nil || a.CurrentApproverID.String() != actorID {
		return approvalerrors.ErrNotCurrentApprover
	}
	return nil
}

func (p AuthorizationPolicy) AllowedActions(actorID string, caps Capabilities, a Approval) []ActionType {
	out := make([]ActionType, 0, len(AllActions))
	for _, action := range AllActions {
		if p.Can(actorID, caps, a, action) == nil {
			out = append(out, action)
		}
	}
	return out
}
