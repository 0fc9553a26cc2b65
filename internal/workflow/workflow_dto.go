package workflow

type ApproverInput struct {
	UserID       string `json:"user_id" binding:"required,uuid"`
	ApproverRole string `json:"approver_role"`
	CanApprove   bool   `json:"can_approve"`
	CanForward   bool   `json:"can_forward"`
	CanFinalize  bool   `json:"can_finalize"`
}

type CreateWorkflowRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	RequestType string          `json:"request_type" binding:"required,oneof=stock_issuance tender procurement asset_disposal"`
	Description string          `json:"description"`
	IsActive    *bool           `json:"is_active"`
	Approvers   []ApproverInput `json:"approvers" binding:"dive"`
}

type UpdateWorkflowRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateApproverRequest struct {
	ApproverRole string `json:"approver_role"`
	CanApprove   bool   `json:"can_approve"`
	CanForward   bool   `json:"can_forward"`
	CanFinalize  bool   `json:"can_finalize"`
}

type ApproverResponse struct {
	ID           string `json:"id"`
	WorkflowID   string `json:"workflow_id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	Designation  string `json:"designation"`
	ApproverRole string `json:"approver_role"`
	CanApprove   bool   `json:"can_approve"`
	CanForward   bool   `json:"can_forward"`
	CanFinalize  bool   `json:"can_finalize"`
}

type WorkflowResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	RequestType string             `json:"request_type"`
	Description string             `json:"description"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   string             `json:"created_at"`
	Approvers   []ApproverResponse `json:"approvers"`
}
