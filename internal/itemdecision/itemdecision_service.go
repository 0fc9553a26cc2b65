package itemdecision

import (
	"context"

	itemdecisionerrors "go-invmis/internal/itemdecision/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	ListByApproval(ctx context.Context, approvalID string) (ItemsResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("itemdecision.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("itemdecision.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListByApproval(ctx context.Context, approvalID string) (ItemsResponse, error) {
	if _, err := uuid.Parse(approvalID); err != nil {
		return ItemsResponse{}, itemdecisionerrors.ErrInvalidApprovalID
	}

	items, err := s.repo.FindByApproval(ctx, approvalID)
	if err != nil {
		s.logger.Error("list request items failed", zap.String("approval_id", approvalID), zap.Error(err))
		return ItemsResponse{}, err
	}

	set := NewDecisionSet(items)
	resp := ItemsResponse{
		ApprovalID: approvalID,
		Items:      make([]ItemResponse, len(items)),
		Summary:    set.Summary(),
		Complete:   len(items) > 0 && set.HasDecisionForAllItems(),
	}
	for i, it := range items {
		resp.Items[i] = mapToResponse(it)
		if dec, ok := set.Decision(it.ID.String()); ok {
			resp.Items[i].Decision = dec.Kind
		}
	}
	return resp, nil
}

// NewItems builds the rows for a freshly submitted request.
func NewItems(approvalID uuid.UUID, in []NewItemInput) []RequestItem {
	items := make([]RequestItem, len(in))
	for i, it := range in {
		items[i] = RequestItem{
			ID:                uuid.New(),
			ApprovalID:        approvalID,
			ItemMasterID:      it.ItemMasterID,
			Nomenclature:      it.Nomenclature,
			RequestedQuantity: it.RequestedQuantity,
		}
	}
	return items
}

func mapToResponse(it RequestItem) ItemResponse {
	resp := ItemResponse{
		ID:                it.ID.String(),
		ApprovalID:        it.ApprovalID.String(),
		ItemMasterID:      it.ItemMasterID,
		Nomenclature:      it.Nomenclature,
		RequestedQuantity: it.RequestedQuantity,
		AllocatedQuantity: it.AllocatedQuantity,
		RejectionReason:   it.RejectionReason,
		ForwardingReason:  it.ForwardingReason,
	}
	if it.DecisionType != nil {
		resp.DecisionType = *it.DecisionType
	}
	return resp
}
