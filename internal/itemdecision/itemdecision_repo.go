package itemdecision

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=itemdecision_repo.go -destination=mock/itemdecision_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByApproval(ctx context.Context, approvalID string) ([]RequestItem, error)
	CreateBatch(ctx context.Context, items []RequestItem) error
	SaveAllocations(ctx context.Context, approvalID, decidedBy string, allocs []Allocation) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) FindByApproval(ctx context.Context, approvalID string) ([]RequestItem, error) {
	var items []RequestItem
	err := r.conn(ctx).
		Where("approval_id = ?", approvalID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) CreateBatch(ctx context.Context, items []RequestItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.conn(ctx).CreateInBatches(items, 100).Error
}

// SaveAllocations writes every allocation or none; an allocation for an item
// outside the approval fails with gorm.ErrRecordNotFound.
func (r *repository) SaveAllocations(ctx context.Context, approvalID, decidedBy string, allocs []Allocation) error {
	now := time.Now().UTC()

	var decider *uuid.UUID
	if id, err := uuid.Parse(decidedBy); err == nil {
		decider = &id
	}

	db := r.conn(ctx)
	for _, a := range allocs {
		res := db.Model(&RequestItem{}).
			Where("id = ? AND approval_id = ?", a.ItemID, approvalID).
			Updates(map[string]any{
				"allocated_quantity": a.AllocatedQuantity,
				"decision_type":      string(a.DecisionType),
				"rejection_reason":   a.RejectionReason,
				"forwarding_reason":  a.ForwardingReason,
				"decided_by":         decider,
				"decided_at":         now,
				"updated_at":         now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}
