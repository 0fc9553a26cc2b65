package workflow

import (
	"time"

	"github.com/google/uuid"
)

// Workflow groups the users allowed to act on one request type.
type Workflow struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string             `gorm:"column:name;type:varchar(255);not null;uniqueIndex:uq_workflow_name"`
	RequestType string             `gorm:"column:request_type;type:varchar(50);not null;index"`
	Description string             `gorm:"column:description;type:text"`
	IsActive    bool               `gorm:"column:is_active;not null"`
	CreatedBy   *uuid.UUID         `gorm:"column:created_by;type:uuid"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
	Approvers   []WorkflowApprover `gorm:"foreignKey:WorkflowID;constraint:OnDelete:CASCADE"`
}

func (Workflow) TableName() string {
	return "approval_workflows"
}

// WorkflowApprover carries the capability flags checked before any action.
type WorkflowApprover struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkflowID   uuid.UUID `gorm:"column:workflow_id;type:uuid;not null;uniqueIndex:uq_workflow_approver"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_workflow_approver"`
	UserName     string    `gorm:"column:user_name;type:varchar(255)"`
	Designation  string    `gorm:"column:designation;type:varchar(255)"`
	ApproverRole string    `gorm:"column:approver_role;type:varchar(100)"`
	CanApprove   bool      `gorm:"column:can_approve;default:false"`
	CanForward   bool      `gorm:"column:can_forward;default:false"`
	CanFinalize  bool      `gorm:"column:can_finalize;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (WorkflowApprover) TableName() string {
	return "workflow_approvers"
}
