package workflow

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-invmis/internal/shared/contextutil"
	"go-invmis/internal/user"
	workflowerrors "go-invmis/internal/workflow/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const WorkflowListCacheKey = "workflows:all"

// ProfileLookup resolves approver display data from the user directory.
type ProfileLookup interface {
	GetProfile(ctx context.Context, id string) (user.Profile, error)
}

//go:generate mockgen -source=workflow_service.go -destination=mock/workflow_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateWorkflowRequest) (WorkflowResponse, error)
	GetAll(ctx context.Context, requestType string) ([]WorkflowResponse, error)
	GetByID(ctx context.Context, id string) (WorkflowResponse, error)
	Update(ctx context.Context, id string, req UpdateWorkflowRequest) (WorkflowResponse, error)
	Delete(ctx context.Context, id string) error

	ListApprovers(ctx context.Context, workflowID string) ([]ApproverResponse, error)
	AddApprover(ctx context.Context, workflowID string, req ApproverInput) (ApproverResponse, error)
	UpdateApprover(ctx context.Context, workflowID, userID string, req UpdateApproverRequest) (ApproverResponse, error)
	RemoveApprover(ctx context.Context, workflowID, userID string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	profiles ProfileLookup
	rdb      *redis.Client
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, profiles ProfileLookup, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("workflow.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workflow.service")
	}
	return &service{db: db, repo: repo, profiles: profiles, rdb: rdb, logger: l}
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return workflowerrors.ErrInvalidWorkflowID
	}
	return nil
}

func hasCapability(approve, forward, finalize bool) bool {
	return approve || forward || finalize
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, WorkflowListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate workflow cache",
			zap.Error(err),
			zap.String("key", WorkflowListCacheKey),
		)
	}
}

func (s *service) buildApprover(ctx context.Context, workflowID uuid.UUID, in ApproverInput) (*WorkflowApprover, error) {
	if !hasCapability(in.CanApprove, in.CanForward, in.CanFinalize) {
		return nil, workflowerrors.ErrApproverWithoutCapability
	}

	profile, err := s.profiles.GetProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	return &WorkflowApprover{
		ID:           uuid.New(),
		WorkflowID:   workflowID,
		UserID:       uuid.MustParse(profile.ID),
		UserName:     profile.FullName,
		Designation:  profile.Designation,
		ApproverRole: in.ApproverRole,
		CanApprove:   in.CanApprove,
		CanForward:   in.CanForward,
		CanFinalize:  in.CanFinalize,
	}, nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateWorkflowRequest) (WorkflowResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	wf := &Workflow{
		ID:          uuid.New(),
		Name:        req.Name,
		RequestType: req.RequestType,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		wf.IsActive = *req.IsActive
	}
	if id, err := uuid.Parse(actorID); err == nil {
		wf.CreatedBy = &id
	}

	// Resolve approvers before opening the transaction; directory lookups
	// should not hold row locks.
	approvers := make([]WorkflowApprover, 0, len(req.Approvers))
	for _, in := range req.Approvers {
		a, err := s.buildApprover(ctx, wf.ID, in)
		if err != nil {
			return WorkflowResponse{}, err
		}
		approvers = append(approvers, *a)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkflowResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, wf); err != nil {
		l.Warn("create workflow failed", zap.String("name", wf.Name), zap.Error(err))
		return WorkflowResponse{}, mapRepositoryError(err)
	}
	for i := range approvers {
		if err := qtx.AddApprover(ctx, &approvers[i]); err != nil {
			return WorkflowResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return WorkflowResponse{}, err
	}

	s.invalidateCache(ctx)
	l.Info("workflow created", zap.String("workflow_id", wf.ID.String()), zap.Int("approvers", len(approvers)))

	wf.Approvers = approvers
	return mapToResponse(*wf), nil
}

func (s *service) GetAll(ctx context.Context, requestType string) ([]WorkflowResponse, error) {
	var all []WorkflowResponse

	cached := false
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, WorkflowListCacheKey).Result(); err == nil {
			cached = json.Unmarshal([]byte(val), &all) == nil
		}
	}

	if !cached {
		wfs, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("get all workflows failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		all = mapToListResponse(wfs)

		if s.rdb != nil {
			if data, err := json.Marshal(all); err == nil {
				s.rdb.Set(ctx, WorkflowListCacheKey, data, 30*time.Minute)
			}
		}
	}

	if requestType == "" {
		return all, nil
	}

	filtered := make([]WorkflowResponse, 0, len(all))
	for _, wf := range all {
		if wf.RequestType == requestType {
			filtered = append(filtered, wf)
		}
	}
	return filtered, nil
}

func (s *service) GetByID(ctx context.Context, id string) (WorkflowResponse, error) {
	if err := validateID(id); err != nil {
		return WorkflowResponse{}, err
	}

	wf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return WorkflowResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*wf), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateWorkflowRequest) (WorkflowResponse, error) {
	if err := validateID(id); err != nil {
		return WorkflowResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkflowResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	wf, err := qtx.FindByID(ctx, id)
	if err != nil {
		return WorkflowResponse{}, mapRepositoryError(err)
	}

	wf.Name = req.Name
	wf.Description = req.Description
	if req.IsActive != nil {
		wf.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, wf); err != nil {
		return WorkflowResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return WorkflowResponse{}, err
	}

	s.invalidateCache(ctx)
	return mapToResponse(*wf), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Pending approvals resolve capabilities through this workflow's approvers.
	n, err := qtx.CountApprovals(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		contextutil.GetLogger(ctx, s.logger).Warn("refusing to delete referenced workflow",
			zap.String("workflow_id", id),
			zap.Int64("approvals", n),
		)
		return workflowerrors.ErrWorkflowInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *service) ListApprovers(ctx context.Context, workflowID string) ([]ApproverResponse, error) {
	if err := validateID(workflowID); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, workflowID); err != nil {
		return nil, mapRepositoryError(err)
	}

	approvers, err := s.repo.ListApprovers(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	resp := make([]ApproverResponse, len(approvers))
	for i, a := range approvers {
		resp[i] = mapApproverToResponse(a)
	}
	return resp, nil
}

func (s *service) AddApprover(ctx context.Context, workflowID string, req ApproverInput) (ApproverResponse, error) {
	if err := validateID(workflowID); err != nil {
		return ApproverResponse{}, err
	}

	wf, err := s.repo.FindByID(ctx, workflowID)
	if err != nil {
		return ApproverResponse{}, mapRepositoryError(err)
	}

	a, err := s.buildApprover(ctx, wf.ID, req)
	if err != nil {
		return ApproverResponse{}, err
	}

	if err := s.repo.AddApprover(ctx, a); err != nil {
		return ApproverResponse{}, mapRepositoryError(err)
	}

	s.invalidateCache(ctx)
	contextutil.GetLogger(ctx, s.logger).Info("workflow approver added",
		zap.String("workflow_id", workflowID),
		zap.String("user_id", req.UserID),
	)
	return mapApproverToResponse(*a), nil
}

func (s *service) UpdateApprover(ctx context.Context, workflowID, userID string, req UpdateApproverRequest) (ApproverResponse, error) {
	if err := validateID(workflowID); err != nil {
		return ApproverResponse{}, err
	}
	if !hasCapability(req.CanApprove, req.CanForward, req.CanFinalize) {
		return ApproverResponse{}, workflowerrors.ErrApproverWithoutCapability
	}

	a, err := s.repo.FindApprover(ctx, workflowID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ApproverResponse{}, workflowerrors.ErrApproverNotFound
	}
	if err != nil {
		return ApproverResponse{}, err
	}

	a.ApproverRole = req.ApproverRole
	a.CanApprove = req.CanApprove
	a.CanForward = req.CanForward
	a.CanFinalize = req.CanFinalize

	if err := s.repo.UpdateApprover(ctx, a); err != nil {
		return ApproverResponse{}, err
	}

	s.invalidateCache(ctx)
	return mapApproverToResponse(*a), nil
}

func (s *service) RemoveApprover(ctx context.Context, workflowID, userID string) error {
	if err := validateID(workflowID); err != nil {
		return err
	}

	affected, err := s.repo.RemoveApprover(ctx, workflowID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return workflowerrors.ErrApproverNotFound
	}

	s.invalidateCache(ctx)
	return nil
}

func mapApproverToResponse(a WorkflowApprover) ApproverResponse {
	return ApproverResponse{
		ID:           a.ID.String(),
		WorkflowID:   a.WorkflowID.String(),
		UserID:       a.UserID.String(),
		UserName:     a.UserName,
		Designation:  a.Designation,
		ApproverRole: a.ApproverRole,
		CanApprove:   a.CanApprove,
		CanForward:   a.CanForward,
		CanFinalize:  a.CanFinalize,
	}
}

func mapToResponse(wf Workflow) WorkflowResponse {
	approvers := make([]ApproverResponse, len(wf.Approvers))
	for i, a := range wf.Approvers {
		approvers[i] = mapApproverToResponse(a)
	}
	return WorkflowResponse{
		ID:          wf.ID.String(),
		Name:        wf.Name,
		RequestType: wf.RequestType,
		Description: wf.Description,
		IsActive:    wf.IsActive,
		CreatedAt:   wf.CreatedAt.Format(time.RFC3339),
		Approvers:   approvers,
	}
}

func mapToListResponse(wfs []Workflow) []WorkflowResponse {
	res := make([]WorkflowResponse, len(wfs))
	for i, wf := range wfs {
		res[i] = mapToResponse(wf)
	}
	return res
}
