package issuance

import (
	"time"

	"go-invmis/internal/events"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RunStatus string

const (
	RunProcessing RunStatus = "processing"
	RunCompleted  RunStatus = "completed"
	RunPartial    RunStatus = "partial"
)

type Stage string

const (
	StageDetermineSource Stage = "determine_source"
	StageIssueFromWing   Stage = "issue_from_wing"
	StageIssueFromAdmin  Stage = "issue_from_admin"
	StageFinalize        Stage = "finalize"
)

// Run is one delivery of an approved stock issuance. The unique index on
// approval_id turns a redelivered event into a duplicate-key error.
type Run struct {
	ID          uuid.UUID                                 `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApprovalID  uuid.UUID                                 `gorm:"type:uuid;not null;uniqueIndex:uq_issuance_run_approval"`
	RequestID   string                                    `gorm:"type:varchar(64);not null"`
	WingID      string                                    `gorm:"type:varchar(64)"`
	ApprovedBy  string                                    `gorm:"type:varchar(64)"`
	Status      RunStatus                                 `gorm:"type:varchar(16);not null"`
	Lines       datatypes.JSONType[[]events.IssuanceLine] `gorm:"type:jsonb"`
	IssuedCount int                                       `gorm:"not null;default:0"`
	FailedCount int                                       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Run) TableName() string {
	return "issuance_runs"
}

type Failure struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RunID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ApprovalID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequestID    string     `gorm:"type:varchar(64);not null"`
	ItemID       string     `gorm:"type:varchar(64)"`
	ItemMasterID string     `gorm:"type:varchar(64)"`
	Quantity     int        `gorm:"not null;default:0"`
	Stage        Stage      `gorm:"type:varchar(32);not null"`
	Reason       string     `gorm:"type:text;not null"`
	Resolved     bool       `gorm:"not null;default:false;index"`
	ResolvedBy   *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt   *time.Time
	ResolveNote  string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Failure) TableName() string {
	return "issuance_failures"
}
