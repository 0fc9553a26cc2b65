package itemdecision

import (
	"time"

	"github.com/google/uuid"
)

type RequestItem struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApprovalID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_request_items_approval"`
	ItemMasterID      string     `gorm:"type:varchar(64);not null"`
	Nomenclature      string     `gorm:"type:varchar(255);not null"`
	RequestedQuantity int        `gorm:"not null"`
	AllocatedQuantity *int       `gorm:""`
	DecisionType      *string    `gorm:"type:varchar(32)"`
	RejectionReason   string     `gorm:"type:text"`
	ForwardingReason  string     `gorm:"type:text"`
	DecidedBy         *uuid.UUID `gorm:"type:uuid"`
	DecidedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (RequestItem) TableName() string {
	return "request_items"
}
