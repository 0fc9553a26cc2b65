package issuance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=issuance_repo.go -destination=mock/issuance_repo_mock.go -package=mock
type Repository interface {
	CreateRun(ctx context.Context, run *Run) error
	CompleteRun(ctx context.Context, runID uuid.UUID, status RunStatus, issued, failed int) error
	RecordFailure(ctx context.Context, f *Failure) error
	ListFailures(ctx context.Context, filter FailureFilter) ([]Failure, int64, error)
	FindFailure(ctx context.Context, id string) (*Failure, error)
	ResolveFailure(ctx context.Context, id string, resolvedBy uuid.UUID, note string) (int64, error)
	CountOpenFailures(ctx context.Context) (int64, error)
	CountStaleRuns(ctx context.Context, olderThan time.Duration) (int64, error)
}

type FailureFilter struct {
	IncludeResolved bool
	ApprovalID      string
	Page            int
	Limit           int
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRun(ctx context.Context, run *Run) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) CompleteRun(ctx context.Context, runID uuid.UUID, status RunStatus, issued, failed int) error {
	return r.db.WithContext(ctx).
		Model(&Run{}).
		Where("id = ?", runID).
		Updates(map[string]any{
			"status":       status,
			"issued_count": issued,
			"failed_count": failed,
			"updated_at":   time.Now().UTC(),
		}).Error
}

func (r *repository) RecordFailure(ctx context.Context, f *Failure) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func failureFilterScope(filter FailureFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !filter.IncludeResolved {
			db = db.Where("resolved = ?", false)
		}
		if filter.ApprovalID != "" {
			db = db.Where("approval_id = ?", filter.ApprovalID)
		}
		return db
	}
}

func (r *repository) ListFailures(ctx context.Context, filter FailureFilter) ([]Failure, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&Failure{}).
		Scopes(failureFilterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var failures []Failure
	err := r.db.WithContext(ctx).
		Scopes(failureFilterScope(filter)).
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&failures).Error
	return failures, total, err
}

func (r *repository) FindFailure(ctx context.Context, id string) (*Failure, error) {
	var f Failure
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// ResolveFailure only touches open rows; zero rows affected means the
// failure was resolved concurrently.
func (r *repository) ResolveFailure(ctx context.Context, id string, resolvedBy uuid.UUID, note string) (int64, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&Failure{}).
		Where("id = ? AND resolved = ?", id, false).
		Updates(map[string]any{
			"resolved":     true,
			"resolved_by":  resolvedBy,
			"resolved_at":  now,
			"resolve_note": note,
			"updated_at":   now,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CountOpenFailures(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Failure{}).Where("resolved = ?", false).Count(&n).Error
	return n, err
}

// CountStaleRuns counts runs still processing after olderThan. A consumer
// that died mid-run leaves one behind, and its redelivery is dropped as a
// duplicate.
func (r *repository) CountStaleRuns(ctx context.Context, olderThan time.Duration) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Run{}).
		Where("status = ? AND updated_at < ?", RunProcessing, time.Now().UTC().Add(-olderThan)).
		Count(&n).Error
	return n, err
}
