package approval

import (
	"time"

	"github.com/google/uuid"
)

type Approval struct {
	ID                  uuid.UUID   `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID           string      `gorm:"column:request_id;type:varchar(64);not null;uniqueIndex:uq_approval_request"`
	RequestType         RequestType `gorm:"column:request_type;type:varchar(50);not null;uniqueIndex:uq_approval_request"`
	WorkflowID          uuid.UUID   `gorm:"column:workflow_id;type:uuid;not null"`
	SubmittedBy         uuid.UUID   `gorm:"column:submitted_by;type:uuid;not null;index"`
	SubmittedByName     string      `gorm:"column:submitted_by_name;type:varchar(255)"`
	SubmittedDate       time.Time   `gorm:"column:submitted_date;not null"`
	CurrentStatus       Status      `gorm:"column:current_status;type:varchar(20);not null;index"`
	CurrentApproverID   *uuid.UUID  `gorm:"column:current_approver_id;type:uuid;index"`
	CurrentApproverName string      `gorm:"column:current_approver_name;type:varchar(255)"`
	ScopeType           ScopeType   `gorm:"column:scope_type;type:varchar(20);not null"`
	WingID              string      `gorm:"column:wing_id;type:varchar(64);index"`
	CreatedAt           time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

func (Approval) TableName() string {
	return "request_approvals"
}

type History struct {
	ID                  uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ApprovalID          uuid.UUID      `gorm:"column:approval_id;type:uuid;not null;uniqueIndex:uq_approval_history_step"`
	StepNumber          int            `gorm:"column:step_number;not null;uniqueIndex:uq_approval_history_step"`
	ActionType          HistoryAction  `gorm:"column:action_type;type:varchar(20);not null"`
	ActionBy            uuid.UUID      `gorm:"column:action_by;type:uuid;not null;index"`
	ActionByName        string         `gorm:"column:action_by_name;type:varchar(255)"`
	ActionByDesignation string         `gorm:"column:action_by_designation;type:varchar(255)"`
	ActionDate          time.Time      `gorm:"column:action_date;not null"`
	Comments            string         `gorm:"column:comments;type:text"`
	IsCurrentStep       bool           `gorm:"column:is_current_step;not null"`
	ForwardedTo         *uuid.UUID     `gorm:"column:forwarded_to;type:uuid"`
	ForwardedToName     string         `gorm:"column:forwarded_to_name;type:varchar(255)"`
	ForwardingType      ForwardingType `gorm:"column:forwarding_type;type:varchar(20)"`
}

func (History) TableName() string {
	return "approval_history"
}

// ActorAction is one history row reduced to what dashboards need.
type ActorAction struct {
	ApprovalID uuid.UUID     `gorm:"column:approval_id"`
	ActionType HistoryAction `gorm:"column:action_type"`
	StepNumber int           `gorm:"column:step_number"`
}
