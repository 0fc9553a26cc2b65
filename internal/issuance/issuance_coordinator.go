package issuance

import (
	"context"

	"go-invmis/internal/events"
	issuanceerrors "go-invmis/internal/issuance/errors"
	"go-invmis/internal/itemdecision"
	"go-invmis/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Coordinator turns an approved stock issuance into inventory movements.
// Per-item failures are recorded for manual reconciliation and never fail
// the delivery; only a failure to open the run is returned, so a duplicate
// delivery surfaces as the unique violation on uq_issuance_run_approval.
type Coordinator struct {
	repo      Repository
	inventory InventoryClient
	logger    *zap.Logger
}

func NewCoordinator(repo Repository, inventory InventoryClient, logger ...*zap.Logger) *Coordinator {
	l := zap.L().Named("issuance.coordinator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("issuance.coordinator")
	}
	return &Coordinator{repo: repo, inventory: inventory, logger: l}
}

func (c *Coordinator) Handle(ctx context.Context, event events.ApprovalApprovedEvent) error {
	l := contextutil.GetLogger(ctx, c.logger).With(
		zap.String("approval_id", event.ApprovalID),
		zap.String("request_id", event.RequestID),
	)

	approvalID, err := uuid.Parse(event.ApprovalID)
	if err != nil || event.RequestID == "" {
		l.Error("dropping malformed approval event", zap.Error(issuanceerrors.ErrInvalidEvent))
		return nil
	}

	run := &Run{
		ApprovalID: approvalID,
		RequestID:  event.RequestID,
		WingID:     event.WingID,
		ApprovedBy: event.ApprovedBy,
		Status:     RunProcessing,
		Lines:      datatypes.NewJSONType(event.Items),
	}
	if err := c.repo.CreateRun(ctx, run); err != nil {
		return err
	}

	issued, failed, stockLines := 0, 0, 0
	for _, line := range event.Items {
		if itemdecision.DecisionType(line.DecisionType) != itemdecision.DecisionApproveFromStock {
			l.Debug("item left to procurement",
				zap.String("item_id", line.ItemID),
				zap.String("decision_type", line.DecisionType),
			)
			continue
		}
		if line.AllocatedQuantity <= 0 {
			continue
		}
		stockLines++

		if stage, err := c.issue(ctx, event, line); err != nil {
			failed++
			c.recordFailure(ctx, l, run, line, stage, err)
			continue
		}
		issued++
	}

	// Nothing left to finalize when every stock line failed.
	if stockLines == 0 || issued > 0 {
		if err := c.inventory.Finalize(ctx, FinalizeRequest{
			StockIssuanceRequestID: event.RequestID,
			FinalizedBy:            event.ApprovedBy,
		}); err != nil {
			failed++
			c.recordFailure(ctx, l, run, events.IssuanceLine{}, StageFinalize, err)
		}
	}

	status := RunCompleted
	if failed > 0 {
		status = RunPartial
	}
	if err := c.repo.CompleteRun(ctx, run.ID, status, issued, failed); err != nil {
		l.Error("complete issuance run failed", zap.Error(err))
	}

	l.Info("issuance run finished",
		zap.String("status", string(status)),
		zap.Int("issued", issued),
		zap.Int("failed", failed),
	)
	return nil
}

func (c *Coordinator) issue(ctx context.Context, event events.ApprovalApprovedEvent, line events.IssuanceLine) (Stage, error) {
	decision, err := c.inventory.DetermineSource(ctx, DetermineSourceRequest{
		ItemMasterID:     line.ItemMasterID,
		RequiredQuantity: line.AllocatedQuantity,
		WingID:           event.WingID,
	})
	if err != nil {
		return StageDetermineSource, err
	}

	req := IssueRequest{
		StockIssuanceItemID:    line.ItemID,
		StockIssuanceRequestID: event.RequestID,
		ItemMasterID:           line.ItemMasterID,
		Quantity:               line.AllocatedQuantity,
		WingID:                 event.WingID,
		IssuedBy:               event.ApprovedBy,
	}

	switch decision.Source {
	case SourceWing:
		return StageIssueFromWing, c.inventory.IssueFromWing(ctx, req)
	case SourceAdmin:
		return StageIssueFromAdmin, c.inventory.IssueFromAdmin(ctx, req)
	default:
		return StageDetermineSource, issuanceerrors.ErrInsufficientStock
	}
}

func (c *Coordinator) recordFailure(ctx context.Context, l *zap.Logger, run *Run, line events.IssuanceLine, stage Stage, cause error) {
	l.Warn("issuance step failed",
		zap.String("stage", string(stage)),
		zap.String("item_id", line.ItemID),
		zap.Error(cause),
	)

	f := &Failure{
		RunID:        run.ID,
		ApprovalID:   run.ApprovalID,
		RequestID:    run.RequestID,
		ItemID:       line.ItemID,
		ItemMasterID: line.ItemMasterID,
		Quantity:     line.AllocatedQuantity,
		Stage:        stage,
		Reason:       cause.Error(),
	}
	if err := c.repo.RecordFailure(ctx, f); err != nil {
		l.Error("record issuance failure failed", zap.String("stage", string(stage)), zap.Error(err))
	}
}
