package approval

import (
	"context"
	"database/sql"

	"go-invmis/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=approval_repo.go -destination=mock/approval_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Approval) error
	FindByID(ctx context.Context, id string) (*Approval, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Approval, error)
	FindByRequest(ctx context.Context, requestID, requestType string) (*Approval, error)
	Update(ctx context.Context, a *Approval) error

	ListPendingForApprover(ctx context.Context, approverID string) ([]Approval, error)
	ListByActor(ctx context.Context, actorID string) ([]Approval, error)
	ListOrganizationalByWing(ctx context.Context, wingID string) ([]Approval, error)
	ListActorActions(ctx context.Context, actorID string) ([]ActorAction, error)

	NextStepNumber(ctx context.Context, approvalID string) (int, error)
	ClearCurrentStep(ctx context.Context, approvalID string) error
	AppendHistory(ctx context.Context, h *History) error
	FindCurrentStep(ctx context.Context, approvalID string) (*History, error)
	ListHistory(ctx context.Context, approvalID string) ([]History, error)
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

func (r *repository) Create(ctx context.Context, a *Approval) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Approval, error) {
	var a Approval
	if err := r.conn(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends, so
// two approvers racing on the same record are serialized.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Approval, error) {
	var a Approval
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByRequest(ctx context.Context, requestID, requestType string) (*Approval, error) {
	var a Approval
	err := r.conn(ctx).
		Where("request_id = ? AND request_type = ?", requestID, requestType).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(ctx context.Context, a *Approval) error {
	return r.conn(ctx).
		Model(a).
		Select("workflow_id", "current_status", "current_approver_id", "current_approver_name", "updated_at").
		Updates(a).Error
}

func (r *repository) ListPendingForApprover(ctx context.Context, approverID string) ([]Approval, error) {
	var list []Approval
	err := r.conn(ctx).
		Where("current_approver_id = ? AND current_status = ?", approverID, StatusPending).
		Order("submitted_date DESC").
		Find(&list).Error
	return list, err
}

// ListByActor returns every record the actor submitted, holds, or acted on.
func (r *repository) ListByActor(ctx context.Context, actorID string) ([]Approval, error) {
	acted := r.conn(ctx).
		Model(&History{}).
		Select("approval_id").
		Where("action_by = ?", actorID)

	var list []Approval
	err := r.conn(ctx).
		Where("submitted_by = ?", actorID).
		Or("current_approver_id = ?", actorID).
		Or("id IN (?)", acted).
		Order("submitted_date DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListOrganizationalByWing(ctx context.Context, wingID string) ([]Approval, error) {
	var list []Approval
	if wingID == "" {
		return list, nil
	}
	err := r.conn(ctx).
		Scopes(tenant.WingScope(wingID)).
		Where("scope_type = ?", ScopeOrganizational).
		Order("submitted_date DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) ListActorActions(ctx context.Context, actorID string) ([]ActorAction, error) {
	var out []ActorAction
	err := r.conn(ctx).
		Model(&History{}).
		Select("approval_id, action_type, step_number").
		Where("action_by = ?", actorID).
		Order("approval_id, step_number ASC").
		Scan(&out).Error
	return out, err
}

func (r *repository) NextStepNumber(ctx context.Context, approvalID string) (int, error) {
	var next int
	err := r.conn(ctx).
		Model(&History{}).
		Select("COALESCE(MAX(step_number), 0) + 1").
		Where("approval_id = ?", approvalID).
		Scan(&next).Error
	return next, err
}

func (r *repository) ClearCurrentStep(ctx context.Context, approvalID string) error {
	return r.conn(ctx).
		Model(&History{}).
		Where("approval_id = ? AND is_current_step = ?", approvalID, true).
		Update("is_current_step", false).Error
}

func (r *repository) AppendHistory(ctx context.Context, h *History) error {
	return r.conn(ctx).Create(h).Error
}

func (r *repository) FindCurrentStep(ctx context.Context, approvalID string) (*History, error) {
	var h History
	err := r.conn(ctx).
		Where("approval_id = ? AND is_current_step = ?", approvalID, true).
		Order("step_number DESC").
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repository) ListHistory(ctx context.Context, approvalID string) ([]History, error) {
	var list []History
	err := r.conn(ctx).
		Where("approval_id = ?", approvalID).
		Order("step_number DESC").
		Find(&list).Error
	return list, err
}
