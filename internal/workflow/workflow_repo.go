package workflow

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=workflow_repo.go -destination=mock/workflow_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, wf *Workflow) error
	FindAll(ctx context.Context) ([]Workflow, error)
	FindByID(ctx context.Context, id string) (*Workflow, error)
	FindActiveByRequestType(ctx context.Context, requestType string) (*Workflow, error)
	Update(ctx context.Context, wf *Workflow) error
	Delete(ctx context.Context, id string) error
	CountApprovals(ctx context.Context, workflowID string) (int64, error)

	AddApprover(ctx context.Context, a *WorkflowApprover) error
	UpdateApprover(ctx context.Context, a *WorkflowApprover) error
	RemoveApprover(ctx context.Context, workflowID, userID string) (int64, error)
	FindApprover(ctx context.Context, workflowID, userID string) (*WorkflowApprover, error)
	ListApprovers(ctx context.Context, workflowID string) ([]WorkflowApprover, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn routes statements through the bound *sql.Tx when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, wf *Workflow) error {
	return r.conn(ctx).Create(wf).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Workflow, error) {
	var wfs []Workflow
	err := r.conn(ctx).
		Preload("Approvers", func(db *gorm.DB) *gorm.DB {
			return db.Order("workflow_approvers.created_at ASC")
		}).
		Order("name ASC").
		Find(&wfs).Error
	return wfs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Workflow, error) {
	var wf Workflow
	err := r.conn(ctx).
		Preload("Approvers", func(db *gorm.DB) *gorm.DB {
			return db.Order("workflow_approvers.created_at ASC")
		}).
		First(&wf, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &wf, nil
}

func (r *repository) FindActiveByRequestType(ctx context.Context, requestType string) (*Workflow, error) {
	var wf Workflow
	err := r.conn(ctx).
		Where("request_type = ? AND is_active = ?", requestType, true).
		Order("created_at ASC").
		First(&wf).Error
	if err != nil {
		return nil, err
	}
	return &wf, nil
}

func (r *repository) Update(ctx context.Context, wf *Workflow) error {
	return r.conn(ctx).
		Model(&Workflow{}).
		Where("id = ?", wf.ID).
		Updates(map[string]interface{}{
			"name":        wf.Name,
			"description": wf.Description,
			"is_active":   wf.IsActive,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Workflow{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountApprovals counts approval records of any status bound to the workflow.
func (r *repository) CountApprovals(ctx context.Context, workflowID string) (int64, error) {
	var n int64
	err := r.conn(ctx).
		Table("request_approvals").
		Where("workflow_id = ?", workflowID).
		Count(&n).Error
	return n, err
}

func (r *repository) AddApprover(ctx context.Context, a *WorkflowApprover) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) UpdateApprover(ctx context.Context, a *WorkflowApprover) error {
	return r.conn(ctx).
		Model(&WorkflowApprover{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"approver_role": a.ApproverRole,
			"can_approve":   a.CanApprove,
			"can_forward":   a.CanForward,
			"can_finalize":  a.CanFinalize,
		}).Error
}

func (r *repository) RemoveApprover(ctx context.Context, workflowID, userID string) (int64, error) {
	res := r.conn(ctx).
		Where("workflow_id = ? AND user_id = ?", workflowID, userID).
		Delete(&WorkflowApprover{})
	return res.RowsAffected, res.Error
}

func (r *repository) FindApprover(ctx context.Context, workflowID, userID string) (*WorkflowApprover, error) {
	var a WorkflowApprover
	err := r.conn(ctx).
		Where("workflow_id = ? AND user_id = ?", workflowID, userID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListApprovers(ctx context.Context, workflowID string) ([]WorkflowApprover, error) {
	var approvers []WorkflowApprover
	err := r.conn(ctx).
		Where("workflow_id = ?", workflowID).
		Order("created_at ASC").
		Find(&approvers).Error
	return approvers, err
}
