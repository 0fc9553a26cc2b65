package issuance

import (
	"context"
	"errors"
	"time"

	issuanceerrors "go-invmis/internal/issuance/errors"
	"go-invmis/internal/shared/apperror"
	"go-invmis/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultFailurePage  = 1
	defaultFailureLimit = 20
)

//go:generate mockgen -source=issuance_service.go -destination=mock/issuance_service_mock.go -package=mock
type Service interface {
	ListFailures(ctx context.Context, q ListFailuresQuery) ([]FailureResponse, int64, error)
	ResolveFailure(ctx context.Context, id, actorID string, req ResolveFailureRequest) (FailureResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("issuance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("issuance.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListFailures(ctx context.Context, q ListFailuresQuery) ([]FailureResponse, int64, error) {
	if q.Page <= 0 {
		q.Page = defaultFailurePage
	}
	if q.Limit <= 0 {
		q.Limit = defaultFailureLimit
	}

	failures, total, err := s.repo.ListFailures(ctx, FailureFilter{
		IncludeResolved: q.Status == "all",
		ApprovalID:      q.ApprovalID,
		Page:            q.Page,
		Limit:           q.Limit,
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list issuance failures failed", zap.Error(err))
		return nil, 0, err
	}

	out := make([]FailureResponse, 0, len(failures))
	for _, f := range failures {
		out = append(out, mapFailureToResponse(f))
	}
	return out, total, nil
}

func (s *service) ResolveFailure(ctx context.Context, id, actorID string, req ResolveFailureRequest) (FailureResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return FailureResponse{}, issuanceerrors.ErrInvalidFailureID
	}
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return FailureResponse{}, apperror.ErrUnauthorized
	}

	n, err := s.repo.ResolveFailure(ctx, id, actor, req.Note)
	if err != nil {
		return FailureResponse{}, err
	}

	f, err := s.repo.FindFailure(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FailureResponse{}, issuanceerrors.ErrFailureNotFound
		}
		return FailureResponse{}, err
	}
	if n == 0 {
		return FailureResponse{}, issuanceerrors.ErrFailureAlreadyResolved
	}

	l.Info("issuance failure resolved",
		zap.String("failure_id", id),
		zap.String("request_id", f.RequestID),
		zap.String("resolved_by", actorID),
	)
	return mapFailureToResponse(*f), nil
}

func mapFailureToResponse(f Failure) FailureResponse {
	resp := FailureResponse{
		ID:           f.ID.String(),
		RunID:        f.RunID.String(),
		ApprovalID:   f.ApprovalID.String(),
		RequestID:    f.RequestID,
		ItemID:       f.ItemID,
		ItemMasterID: f.ItemMasterID,
		Quantity:     f.Quantity,
		Stage:        string(f.Stage),
		Reason:       f.Reason,
		Resolved:     f.Resolved,
		ResolveNote:  f.ResolveNote,
		CreatedAt:    f.CreatedAt.Format(time.RFC3339),
	}
	if f.ResolvedBy != nil {
		resp.ResolvedBy = f.ResolvedBy.String()
	}
	if f.ResolvedAt != nil {
		resp.ResolvedAt = f.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}
