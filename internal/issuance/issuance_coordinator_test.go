package issuance_test

import (
	"context"
	"errors"
	"testing"

	"go-invmis/internal/events"
	"go-invmis/internal/issuance"
	issuanceerrors "go-invmis/internal/issuance/errors"
	issuanceMock "go-invmis/internal/issuance/mock"
	"go-invmis/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	approvalID = uuid.MustParse("7d1e2f30-4a5b-4c6d-8e9f-0a1b2c3d4e01")
	approverID = uuid.MustParse("7d1e2f30-4a5b-4c6d-8e9f-0a1b2c3d4e02")
	runID      = uuid.MustParse("7d1e2f30-4a5b-4c6d-8e9f-0a1b2c3d4e03")
)

const testWing = "wing-7"

func approvedEvent(lines ...events.IssuanceLine) events.ApprovalApprovedEvent {
	return events.ApprovalApprovedEvent{
		EventType:   events.ApprovalApprovedEventType,
		ApprovalID:  approvalID.String(),
		RequestID:   "SIR-2024-001",
		RequestType: "stock_issuance",
		WingID:      testWing,
		ApprovedBy:  approverID.String(),
		Items:       lines,
	}
}

func stockLine(id, master string, qty int) events.IssuanceLine {
	return events.IssuanceLine{
		ItemID:            id,
		ItemMasterID:      master,
		DecisionType:      "APPROVE_FROM_STOCK",
		RequestedQuantity: qty,
		AllocatedQuantity: qty,
	}
}

type coordinatorDeps struct {
	repo      *issuanceMock.MockRepository
	inventory *issuanceMock.MockInventoryClient
	coord     *issuance.Coordinator
}

func setupCoordinatorTest(t *testing.T) coordinatorDeps {
	ctrl := gomock.NewController(t)
	repo := issuanceMock.NewMockRepository(ctrl)
	inventory := issuanceMock.NewMockInventoryClient(ctrl)
	return coordinatorDeps{
		repo:      repo,
		inventory: inventory,
		coord:     issuance.NewCoordinator(repo, inventory),
	}
}

func (d coordinatorDeps) expectRun(t *testing.T) {
	d.repo.EXPECT().CreateRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *issuance.Run) error {
			assert.Equal(t, approvalID, run.ApprovalID)
			assert.Equal(t, "SIR-2024-001", run.RequestID)
			assert.Equal(t, issuance.RunProcessing, run.Status)
			run.ID = runID
			return nil
		})
}

func TestCoordinator_Handle_IssuesFromEachSource(t *testing.T) {
	ctx := context.Background()
	d := setupCoordinatorTest(t)

	procurement := stockLine("item-3", "IM-300", 5)
	procurement.DecisionType = "APPROVE_FOR_PROCUREMENT"
	evt := approvedEvent(stockLine("item-1", "IM-100", 2), stockLine("item-2", "IM-200", 1), procurement)

	d.expectRun(t)
	gomock.InOrder(
		d.inventory.EXPECT().DetermineSource(ctx, issuance.DetermineSourceRequest{ItemMasterID: "IM-100", RequiredQuantity: 2, WingID: testWing}).
			Return(issuance.SourceDecision{Source: issuance.SourceWing, AvailableQuantity: 10}, nil),
		d.inventory.EXPECT().IssueFromWing(ctx, issuance.IssueRequest{
			StockIssuanceItemID:    "item-1",
			StockIssuanceRequestID: "SIR-2024-001",
			ItemMasterID:           "IM-100",
			Quantity:               2,
			WingID:                 testWing,
			IssuedBy:               approverID.String(),
		}).Return(nil),
		d.inventory.EXPECT().DetermineSource(ctx, gomock.Any()).
			Return(issuance.SourceDecision{Source: issuance.SourceAdmin}, nil),
		d.inventory.EXPECT().IssueFromAdmin(ctx, gomock.Any()).Return(nil),
		d.inventory.EXPECT().Finalize(ctx, issuance.FinalizeRequest{
			StockIssuanceRequestID: "SIR-2024-001",
			FinalizedBy:            approverID.String(),
		}).Return(nil),
	)
	d.repo.EXPECT().CompleteRun(ctx, runID, issuance.RunCompleted, 2, 0).Return(nil)

	err := d.coord.Handle(ctx, evt)

	assert.NoError(t, err)
}

func TestCoordinator_Handle_RecordsFailuresAndCommits(t *testing.T) {
	ctx := context.Background()
	d := setupCoordinatorTest(t)

	evt := approvedEvent(stockLine("item-1", "IM-100", 2), stockLine("item-2", "IM-200", 4))

	d.expectRun(t)
	d.inventory.EXPECT().DetermineSource(ctx, gomock.Any()).
		Return(issuance.SourceDecision{}, apperror.ErrNetwork.WithCause(errors.New("connection refused")))
	d.inventory.EXPECT().DetermineSource(ctx, gomock.Any()).
		Return(issuance.SourceDecision{Source: issuance.SourceProcurement}, nil)

	var recorded []*issuance.Failure
	d.repo.EXPECT().RecordFailure(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f *issuance.Failure) error {
			recorded = append(recorded, f)
			return nil
		}).Times(2)
	d.repo.EXPECT().CompleteRun(ctx, runID, issuance.RunPartial, 0, 2).Return(nil)

	err := d.coord.Handle(ctx, evt)

	require.NoError(t, err, "item failures never fail the delivery")
	require.Len(t, recorded, 2)
	assert.Equal(t, runID, recorded[0].RunID)
	assert.Equal(t, issuance.StageDetermineSource, recorded[0].Stage)
	assert.Contains(t, recorded[0].Reason, "connection refused")
	assert.Equal(t, "item-2", recorded[1].ItemID)
	assert.Equal(t, 4, recorded[1].Quantity)
	assert.Equal(t, issuanceerrors.ErrInsufficientStock.Error(), recorded[1].Reason)
}

func TestCoordinator_Handle_FinalizeFailure(t *testing.T) {
	ctx := context.Background()
	d := setupCoordinatorTest(t)

	d.expectRun(t)
	d.inventory.EXPECT().DetermineSource(ctx, gomock.Any()).
		Return(issuance.SourceDecision{Source: issuance.SourceWing}, nil)
	d.inventory.EXPECT().IssueFromWing(ctx, gomock.Any()).Return(nil)
	d.inventory.EXPECT().Finalize(ctx, gomock.Any()).Return(issuanceerrors.ErrInventoryRejected)
	d.repo.EXPECT().RecordFailure(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f *issuance.Failure) error {
			assert.Equal(t, issuance.StageFinalize, f.Stage)
			assert.Empty(t, f.ItemID)
			return nil
		})
	d.repo.EXPECT().CompleteRun(ctx, runID, issuance.RunPartial, 1, 1).Return(errors.New("db gone"))

	assert.NoError(t, d.coord.Handle(ctx, approvedEvent(stockLine("item-1", "IM-100", 1))))
}

func TestCoordinator_Handle_ProcurementOnly(t *testing.T) {
	ctx := context.Background()
	d := setupCoordinatorTest(t)

	line := stockLine("item-1", "IM-100", 3)
	line.DecisionType = "APPROVE_FOR_PROCUREMENT"

	d.expectRun(t)
	d.inventory.EXPECT().Finalize(ctx, gomock.Any()).Return(nil)
	d.repo.EXPECT().CompleteRun(ctx, runID, issuance.RunCompleted, 0, 0).Return(nil)

	assert.NoError(t, d.coord.Handle(ctx, approvedEvent(line)))
}

func TestCoordinator_Handle_DuplicateDelivery(t *testing.T) {
	d := setupCoordinatorTest(t)

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_issuance_run_approval"}
	d.repo.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(dup)

	err := d.coord.Handle(context.Background(), approvedEvent(stockLine("item-1", "IM-100", 1)))

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "uq_issuance_run_approval", pgErr.ConstraintName)
}

func TestCoordinator_Handle_MalformedEvent(t *testing.T) {
	d := setupCoordinatorTest(t)

	evt := approvedEvent()
	evt.ApprovalID = "not-a-uuid"

	assert.NoError(t, d.coord.Handle(context.Background(), evt))
}
