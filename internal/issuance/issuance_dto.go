package issuance

type ListFailuresQuery struct {
	Status     string `form:"status" binding:"omitempty,oneof=open all"`
	ApprovalID string `form:"approval_id" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type ResolveFailureRequest struct {
	Note string `json:"note" binding:"required,max=1000"`
}

type FailureResponse struct {
	ID           string `json:"id"`
	RunID        string `json:"run_id"`
	ApprovalID   string `json:"approval_id"`
	RequestID    string `json:"request_id"`
	ItemID       string `json:"item_id,omitempty"`
	ItemMasterID string `json:"item_master_id,omitempty"`
	Quantity     int    `json:"quantity"`
	Stage        string `json:"stage"`
	Reason       string `json:"reason"`
	Resolved     bool   `json:"resolved"`
	ResolvedBy   string `json:"resolved_by,omitempty"`
	ResolvedAt   string `json:"resolved_at,omitempty"`
	ResolveNote  string `json:"resolve_note,omitempty"`
	CreatedAt    string `json:"created_at"`
}
