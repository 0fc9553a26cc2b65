package approval

import "go-invmis/internal/itemdecision"

type SubmitRequest struct {
	RequestID         string                      `json:"request_id" binding:"required,max=64"`
	RequestType       string                      `json:"request_type" binding:"required,oneof=stock_issuance tender procurement asset_disposal"`
	ScopeType         string                      `json:"scope_type" binding:"omitempty,oneof=individual organizational"`
	InitialApproverID string                      `json:"initial_approver_id" binding:"omitempty,uuid"`
	Comments          string                      `json:"comments"`
	Items             []itemdecision.NewItemInput `json:"items" binding:"dive"`
}

// ActionRequest is the generic action body. Forward fields are ignored by
// the other actions.
type ActionRequest struct {
	ActionType     string `json:"action_type" binding:"required"`
	Comments       string `json:"comments"`
	ForwardedTo    string `json:"forwarded_to" binding:"omitempty,uuid"`
	ForwardingType string `json:"forwarding_type" binding:"omitempty,oneof=approval action"`
	WorkflowID     string `json:"workflow_id" binding:"omitempty,uuid"`
}

type ForwardRequest struct {
	Comments       string `json:"comments"`
	ForwardedTo    string `json:"forwarded_to" binding:"omitempty,uuid"`
	ForwardingType string `json:"forwarding_type" binding:"omitempty,oneof=approval action"`
	WorkflowID     string `json:"workflow_id" binding:"omitempty,uuid"`
}

type CommentRequest struct {
	Comments string `json:"comments"`
}

type ItemAllocationInput struct {
	RequestedItemID   string `json:"requested_item_id" binding:"required,uuid"`
	AllocatedQuantity *int   `json:"allocated_quantity" binding:"omitempty,min=0"`
	DecisionType      string `json:"decision_type" binding:"required"`
	RejectionReason   string `json:"rejection_reason"`
	ForwardingReason  string `json:"forwarding_reason"`
}

type SubmitDecisionsRequest struct {
	ApproverName        string                `json:"approver_name"`
	ApproverDesignation string                `json:"approver_designation"`
	ApprovalComments    string                `json:"approval_comments"`
	ItemAllocations     []ItemAllocationInput `json:"item_allocations" binding:"dive"`
	// BulkDecision applies one item decision kind to every item first.
	BulkDecision string `json:"bulk_decision" binding:"omitempty,oneof=approve_wing forward_admin forward_supervisor reject return"`
}

// ApproveRequest is the body of POST /approvals/:id/approve, which carries
// either plain comments or a per-item decision batch.
type ApproveRequest struct {
	Comments string `json:"comments"`
	SubmitDecisionsRequest
}

func (r ApproveRequest) HasDecisions() bool {
	return len(r.ItemAllocations) > 0 || r.BulkDecision != ""
}

type ApprovalResponse struct {
	ID                  string `json:"id"`
	RequestID           string `json:"request_id"`
	RequestType         string `json:"request_type"`
	WorkflowID          string `json:"workflow_id"`
	SubmittedBy         string `json:"submitted_by"`
	SubmittedByName     string `json:"submitted_by_name"`
	SubmittedDate       string `json:"submitted_date"`
	CurrentStatus       string `json:"current_status"`
	CurrentApproverID   string `json:"current_approver_id,omitempty"`
	CurrentApproverName string `json:"current_approver_name,omitempty"`
	ScopeType           string `json:"scope_type"`
	WingID              string `json:"wing_id"`
	UpdatedAt           string `json:"updated_at"`
}

type ApprovalDetailResponse struct {
	ApprovalResponse
	IsCurrentApprover bool         `json:"is_current_approver"`
	AllowedActions    []ActionType `json:"allowed_actions"`
}

type HistoryResponse struct {
	ID                  string `json:"id"`
	StepNumber          int    `json:"step_number"`
	ActionType          string `json:"action_type"`
	ActionBy            string `json:"action_by"`
	ActionByName        string `json:"action_by_name"`
	ActionByDesignation string `json:"action_by_designation"`
	ActionDate          string `json:"action_date"`
	Comments            string `json:"comments,omitempty"`
	IsCurrentStep       bool   `json:"is_current_step"`
	ForwardedTo         string `json:"forwarded_to,omitempty"`
	ForwardedToName     string `json:"forwarded_to_name,omitempty"`
	ForwardingType      string `json:"forwarding_type,omitempty"`
}

const (
	ForwarderSourceSupervisor = "supervisor"
	ForwarderSourceWorkflow   = "workflow"
)

type ForwarderResponse struct {
	UserID      string `json:"user_id"`
	FullName    string `json:"full_name"`
	Designation string `json:"designation"`
	Source      string `json:"source"`
	CanApprove  bool   `json:"can_approve"`
	CanForward  bool   `json:"can_forward"`
	CanFinalize bool   `json:"can_finalize"`
}
