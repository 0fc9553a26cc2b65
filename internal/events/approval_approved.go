package events

import "time"

const (
	ApprovalApprovedTopic     = "invmis.approval.approved.v1"
	ApprovalApprovedEventType = "approval.approved"
)

// IssuanceLine is one approved item allocation carried to the issuance side.
type IssuanceLine struct {
	ItemID            string `json:"item_id"`
	ItemMasterID      string `json:"item_master_id"`
	Nomenclature      string `json:"nomenclature"`
	DecisionType      string `json:"decision_type"`
	RequestedQuantity int    `json:"requested_quantity"`
	AllocatedQuantity int    `json:"allocated_quantity"`
}

type ApprovalApprovedEvent struct {
	EventType   string         `json:"event_type"`
	ApprovalID  string         `json:"approval_id"`
	RequestID   string         `json:"request_id"`
	RequestType string         `json:"request_type"`
	WingID      string         `json:"wing_id"`
	ApprovedBy  string         `json:"approved_by"`
	Items       []IssuanceLine `json:"items"`
	OccurredAt  time.Time      `json:"occurred_at"`
}
