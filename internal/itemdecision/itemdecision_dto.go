package itemdecision

type ItemResponse struct {
	ID                string `json:"id"`
	ApprovalID        string `json:"approval_id"`
	ItemMasterID      string `json:"item_master_id"`
	Nomenclature      string `json:"nomenclature"`
	RequestedQuantity int    `json:"requested_quantity"`
	AllocatedQuantity *int   `json:"allocated_quantity"`
	DecisionType      string `json:"decision_type,omitempty"`
	Decision          Kind   `json:"decision,omitempty"`
	RejectionReason   string `json:"rejection_reason,omitempty"`
	ForwardingReason  string `json:"forwarding_reason,omitempty"`
}

type ItemsResponse struct {
	ApprovalID string         `json:"approval_id"`
	Items      []ItemResponse `json:"items"`
	Summary    Summary        `json:"summary"`
	Complete   bool           `json:"complete"`
}

// NewItemInput is one line of a stock issuance submission.
type NewItemInput struct {
	ItemMasterID      string `json:"item_master_id" binding:"required"`
	Nomenclature      string `json:"nomenclature" binding:"required"`
	RequestedQuantity int    `json:"requested_quantity" binding:"required,gt=0"`
}
