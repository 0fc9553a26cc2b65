package approval_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-invmis/internal/approval"
	approvalerrors "go-invmis/internal/approval/errors"
	approvalMock "go-invmis/internal/approval/mock"
	"go-invmis/internal/events"
	"go-invmis/internal/itemdecision"
	itemdecisionerrors "go-invmis/internal/itemdecision/errors"
	itemdecisionMock "go-invmis/internal/itemdecision/mock"
	"go-invmis/internal/messaging/kafka"
	kafkaMock "go-invmis/internal/messaging/kafka/mock"
	"go-invmis/internal/user"
	"go-invmis/internal/workflow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testWing = "wing-7"

var (
	approvalID   = uuid.MustParse("7a0d6a0e-3c2b-4f43-9b7e-2a4f7c1e0a01")
	workflowID   = uuid.MustParse("7a0d6a0e-3c2b-4f43-9b7e-2a4f7c1e0a02")
	submitterID  = uuid.MustParse("7a0d6a0e-3c2b-4f43-9b7e-2a4f7c1e0a03")
	approverID   = uuid.MustParse("7a0d6a0e-3c2b-4f43-9b7e-2a4f7c1e0a04")
	supervisorID = uuid.MustParse("7a0d6a0e-3c2b-4f43-9b7e-2a4f7c1e0a05")
	strangerID   = uuid.MustParse("7a0d6a0e-3c2b-4f43-9b7e-2a4f7c1e0a06")
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   approval.Service
	repo      *approvalMock.MockRepository
	items     *itemdecisionMock.MockRepository
	workflows *approvalMock.MockWorkflowDirectory
	users     *approvalMock.MockUserDirectory
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		sqlMock:   sqlMock,
		redisMock: redisMock,
		repo:      approvalMock.NewMockRepository(ctrl),
		items:     itemdecisionMock.NewMockRepository(ctrl),
		workflows: approvalMock.NewMockWorkflowDirectory(ctrl),
		users:     approvalMock.NewMockUserDirectory(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
	}
	deps.service = approval.NewService(db, deps.repo, deps.items, deps.workflows, deps.users, deps.outbox, rdb)
	return deps
}

func (d *serviceDeps) verify(t *testing.T) {
	t.Helper()
	assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	assert.NoError(t, d.redisMock.ExpectationsWereMet())
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func expectInvalidate(mock redismock.ClientMock, userIDs ...uuid.UUID) {
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = approval.SummaryCacheKey(id.String())
	}
	mock.ExpectDel(keys...).SetVal(int64(len(keys)))
	mock.ExpectIncr(approval.WingVersionKey(testWing)).SetVal(1)
}

func profile(id uuid.UUID, name, designation string) user.Profile {
	return user.Profile{ID: id.String(), FullName: name, Designation: designation, WingID: testWing}
}

func pendingApproval(rt approval.RequestType, current uuid.UUID) *approval.Approval {
	return &approval.Approval{
		ID:                approvalID,
		RequestID:         "SIR-2024-001",
		RequestType:       rt,
		WorkflowID:        workflowID,
		SubmittedBy:       submitterID,
		SubmittedByName:   "Requester",
		CurrentStatus:     approval.StatusPending,
		CurrentApproverID: &current,
		ScopeType:         approval.ScopeIndividual,
		WingID:            testWing,
	}
}

func decidedItem(qty int, dt itemdecision.DecisionType) itemdecision.RequestItem {
	it := itemdecision.RequestItem{
		ID:                uuid.New(),
		ApprovalID:        approvalID,
		ItemMasterID:      "IM-" + uuid.NewString()[:4],
		Nomenclature:      "A4 paper",
		RequestedQuantity: qty,
	}
	if dt != "" {
		s := string(dt)
		it.DecisionType = &s
	}
	return it
}

// expectLockedLoad covers the shared prefix of every action: actor lookup,
// row lock and capability lookup.
func (d *serviceDeps) expectLockedLoad(a *approval.Approval, actor user.Profile, approver *workflow.WorkflowApprover) {
	d.users.EXPECT().GetProfile(gomock.Any(), actor.ID).Return(actor, nil)
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().FindByIDForUpdate(gomock.Any(), a.ID.String()).Return(a, nil)
	if approver == nil {
		d.workflows.EXPECT().FindApprover(gomock.Any(), workflowID.String(), actor.ID).Return(nil, gorm.ErrRecordNotFound)
		d.repo.EXPECT().FindCurrentStep(gomock.Any(), a.ID.String()).
			Return(&approval.History{StepNumber: 1, ActionType: approval.HistorySubmitted, IsCurrentStep: true}, nil)
	} else {
		d.workflows.EXPECT().FindApprover(gomock.Any(), workflowID.String(), actor.ID).Return(approver, nil)
	}
}

func (d *serviceDeps) expectTransition(t *testing.T, step int, check func(h *approval.History), checkApproval func(a *approval.Approval)) {
	d.repo.EXPECT().NextStepNumber(gomock.Any(), approvalID.String()).Return(step, nil)
	d.repo.EXPECT().ClearCurrentStep(gomock.Any(), approvalID.String()).Return(nil)
	d.repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h *approval.History) error {
		assert.Equal(t, step, h.StepNumber)
		check(h)
		return nil
	})
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *approval.Approval) error {
		checkApproval(a)
		return nil
	})
}

func TestApprovalService_Forward(t *testing.T) {
	ctx := context.Background()
	actor := profile(approverID, "Section Head", "Deputy Director")
	supervisor := profile(supervisorID, "Wing Head", "Director")

	t.Run("approval mode moves the record to the actor's supervisor", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)

		expectTx(deps.sqlMock, true)
		deps.expectLockedLoad(a, actor, nil)
		deps.users.EXPECT().GetSupervisor(gomock.Any(), approverID.String()).Return(supervisor, nil)
		deps.expectTransition(t, 2, func(h *approval.History) {
			assert.Equal(t, approval.HistoryForwarded, h.ActionType)
			assert.True(t, h.IsCurrentStep)
			require.NotNil(t, h.ForwardedTo)
			assert.Equal(t, supervisorID, *h.ForwardedTo)
			assert.Equal(t, approval.ForwardApproval, h.ForwardingType)
			assert.Equal(t, "Section Head", h.ActionByName)
		}, func(a *approval.Approval) {
			assert.Equal(t, approval.StatusPending, a.CurrentStatus)
			assert.Equal(t, supervisorID, *a.CurrentApproverID)
		})
		expectInvalidate(deps.redisMock, submitterID, approverID, supervisorID)

		resp, err := deps.service.Forward(ctx, approvalID.String(), approverID.String(), approval.ForwardRequest{Comments: "please review"})

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.CurrentStatus)
		assert.Equal(t, supervisorID.String(), resp.CurrentApproverID)
		assert.Equal(t, "Wing Head", resp.CurrentApproverName)
		deps.verify(t)
	})

	t.Run("action mode targets a workflow member and switches workflow", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)
		otherWorkflow := uuid.New()

		expectTx(deps.sqlMock, true)
		deps.expectLockedLoad(a, actor, &workflow.WorkflowApprover{UserID: approverID, CanForward: true})
		deps.workflows.EXPECT().FindApprover(gomock.Any(), otherWorkflow.String(), strangerID.String()).
			Return(&workflow.WorkflowApprover{WorkflowID: otherWorkflow, UserID: strangerID, UserName: "Store Keeper"}, nil)
		deps.expectTransition(t, 3, func(h *approval.History) {
			assert.Equal(t, approval.ForwardAction, h.ForwardingType)
			assert.Equal(t, "Store Keeper", h.ForwardedToName)
		}, func(a *approval.Approval) {
			assert.Equal(t, otherWorkflow, a.WorkflowID)
			assert.Equal(t, strangerID, *a.CurrentApproverID)
		})
		expectInvalidate(deps.redisMock, submitterID, approverID, strangerID)

		_, err := deps.service.Forward(ctx, approvalID.String(), approverID.String(), approval.ForwardRequest{
			ForwardingType: "action",
			ForwardedTo:    strangerID.String(),
			WorkflowID:     otherWorkflow.String(),
		})

		require.NoError(t, err)
		deps.verify(t)
	})

	t.Run("action mode target outside the workflow", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)

		expectTx(deps.sqlMock, false)
		deps.expectLockedLoad(a, actor, nil)
		deps.workflows.EXPECT().FindApprover(gomock.Any(), workflowID.String(), strangerID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Forward(ctx, approvalID.String(), approverID.String(), approval.ForwardRequest{
			ForwardingType: "action",
			ForwardedTo:    strangerID.String(),
			WorkflowID:     workflowID.String(),
		})

		assert.ErrorIs(t, err, approvalerrors.ErrTargetNotInWorkflow)
		deps.verify(t)
	})

	t.Run("action mode without target fails before any lookup", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Forward(ctx, approvalID.String(), approverID.String(), approval.ForwardRequest{ForwardingType: "action"})

		assert.ErrorIs(t, err, approvalerrors.ErrForwardTargetRequired)
		deps.verify(t)
	})

	t.Run("no supervisor configured leaves the record untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)

		expectTx(deps.sqlMock, false)
		deps.expectLockedLoad(a, actor, nil)
		deps.users.EXPECT().GetSupervisor(gomock.Any(), approverID.String()).Return(user.Profile{}, approvalerrors.ErrNoSupervisorFound)

		_, err := deps.service.Forward(ctx, approvalID.String(), approverID.String(), approval.ForwardRequest{})

		assert.ErrorIs(t, err, approvalerrors.ErrNoSupervisorFound)
		assert.Equal(t, approverID, *a.CurrentApproverID)
		deps.verify(t)
	})

	t.Run("only the current approver may act", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)
		stranger := profile(strangerID, "Someone", "Clerk")

		expectTx(deps.sqlMock, false)
		deps.expectLockedLoad(a, stranger, nil)

		_, err := deps.service.Forward(ctx, approvalID.String(), strangerID.String(), approval.ForwardRequest{})

		assert.ErrorIs(t, err, approvalerrors.ErrNotCurrentApprover)
		deps.verify(t)
	})

	t.Run("workflow row without forward capability", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)

		expectTx(deps.sqlMock, false)
		deps.expectLockedLoad(a, actor, &workflow.WorkflowApprover{UserID: approverID, CanApprove: true})

		_, err := deps.service.Forward(ctx, approvalID.String(), approverID.String(), approval.ForwardRequest{})

		assert.ErrorIs(t, err, approvalerrors.ErrPermissionDenied)
		deps.verify(t)
	})

	t.Run("approver removed after action-mode forwarding holds nothing", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)

		expectTx(deps.sqlMock, false)
		deps.users.EXPECT().GetProfile(gomock.Any(), actor.ID).Return(actor, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), approvalID.String()).Return(a, nil)
		deps.workflows.EXPECT().FindApprover(gomock.Any(), workflowID.String(), actor.ID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().FindCurrentStep(gomock.Any(), approvalID.String()).
			Return(&approval.History{StepNumber: 3, ActionType: approval.HistoryForwarded, ForwardingType: approval.ForwardAction, IsCurrentStep: true}, nil)

		_, err := deps.service.Forward(ctx, approvalID.String(), approverID.String(), approval.ForwardRequest{})

		assert.ErrorIs(t, err, approvalerrors.ErrPermissionDenied)
		deps.verify(t)
	})
}

func TestApprovalService_Approve(t *testing.T) {
	ctx := context.Background()
	actor := profile(approverID, "Wing Head", "Director")

	t.Run("stock issuance with undecided items is refused", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestStockIssuance, approverID)

		expectTx(deps.sqlMock, false)
		deps.expectLockedLoad(a, actor, nil)
		deps.items.EXPECT().WithTx(gomock.Any()).Return(deps.items)
		deps.items.EXPECT().FindByApproval(gomock.Any(), approvalID.String()).Return([]itemdecision.RequestItem{
			decidedItem(10, itemdecision.DecisionApproveFromStock),
			decidedItem(5, ""),
		}, nil)

		_, err := deps.service.Approve(ctx, approvalID.String(), approverID.String(), approval.CommentRequest{})

		assert.ErrorIs(t, err, approvalerrors.ErrItemDecisionsIncomplete)
		assert.Equal(t, approval.StatusPending, a.CurrentStatus)
		deps.verify(t)
	})

	t.Run("stock issuance approval enqueues the issuance event", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestStockIssuance, approverID)
		items := []itemdecision.RequestItem{
			decidedItem(10, itemdecision.DecisionApproveFromStock),
			decidedItem(4, itemdecision.DecisionApproveForProcurement),
		}

		expectTx(deps.sqlMock, true)
		deps.expectLockedLoad(a, actor, nil)
		deps.items.EXPECT().WithTx(gomock.Any()).Return(deps.items)
		deps.items.EXPECT().FindByApproval(gomock.Any(), approvalID.String()).Return(items, nil)
		deps.expectTransition(t, 2, func(h *approval.History) {
			assert.Equal(t, approval.HistoryApproved, h.ActionType)
			assert.Nil(t, h.ForwardedTo)
		}, func(a *approval.Approval) {
			assert.Equal(t, approval.StatusApproved, a.CurrentStatus)
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.ApprovalApprovedTopic, e.Topic)
			assert.Equal(t, kafka.AggregateApproval, e.AggregateType)
			assert.Equal(t, approvalID.String(), e.AggregateID)

			var evt events.ApprovalApprovedEvent
			require.NoError(t, json.Unmarshal(e.Payload, &evt))
			assert.Equal(t, "SIR-2024-001", evt.RequestID)
			assert.Equal(t, testWing, evt.WingID)
			require.Len(t, evt.Items, 2)
			assert.Equal(t, "APPROVE_FROM_STOCK", evt.Items[0].DecisionType)
			assert.Equal(t, 4, evt.Items[1].AllocatedQuantity)
			return nil
		})
		expectInvalidate(deps.redisMock, submitterID, approverID)

		resp, err := deps.service.Approve(ctx, approvalID.String(), approverID.String(), approval.CommentRequest{Comments: "ok"})

		require.NoError(t, err)
		assert.Equal(t, "approved", resp.CurrentStatus)
		deps.verify(t)
	})

	t.Run("non stock request approves without items or outbox", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestProcurement, approverID)

		expectTx(deps.sqlMock, true)
		deps.expectLockedLoad(a, actor, nil)
		deps.expectTransition(t, 4, func(h *approval.History) {
			assert.Equal(t, approval.HistoryApproved, h.ActionType)
		}, func(a *approval.Approval) {
			assert.Equal(t, approval.StatusApproved, a.CurrentStatus)
		})
		expectInvalidate(deps.redisMock, submitterID, approverID)

		_, err := deps.service.Approve(ctx, approvalID.String(), approverID.String(), approval.CommentRequest{})

		require.NoError(t, err)
		deps.verify(t)
	})

	t.Run("terminal record rejects further actions", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)
		a.CurrentStatus = approval.StatusApproved

		expectTx(deps.sqlMock, false)
		deps.expectLockedLoad(a, actor, nil)

		_, err := deps.service.Approve(ctx, approvalID.String(), approverID.String(), approval.CommentRequest{})

		assert.ErrorIs(t, err, approvalerrors.ErrInvalidState)
		deps.verify(t)
	})
}

func TestApprovalService_RejectReturnFinalize(t *testing.T) {
	ctx := context.Background()
	actor := profile(approverID, "Wing Head", "Director")

	t.Run("reject requires comments before any lookup", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Reject(ctx, approvalID.String(), approverID.String(), approval.CommentRequest{Comments: "  "})

		assert.ErrorIs(t, err, approvalerrors.ErrCommentsRequired)
		deps.verify(t)
	})

	t.Run("return records the returned label", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)

		expectTx(deps.sqlMock, true)
		deps.expectLockedLoad(a, actor, nil)
		deps.expectTransition(t, 2, func(h *approval.History) {
			assert.Equal(t, approval.HistoryReturned, h.ActionType)
			assert.Equal(t, "fix quantities", h.Comments)
		}, func(a *approval.Approval) {
			assert.Equal(t, approval.StatusReturned, a.CurrentStatus)
		})
		expectInvalidate(deps.redisMock, submitterID, approverID)

		resp, err := deps.service.Return(ctx, approvalID.String(), approverID.String(), approval.CommentRequest{Comments: "fix quantities"})

		require.NoError(t, err)
		assert.Equal(t, "returned", resp.CurrentStatus)
		deps.verify(t)
	})

	t.Run("finalize needs the finalize capability", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)

		expectTx(deps.sqlMock, false)
		deps.expectLockedLoad(a, actor, nil)

		_, err := deps.service.Finalize(ctx, approvalID.String(), approverID.String(), approval.CommentRequest{})

		assert.ErrorIs(t, err, approvalerrors.ErrPermissionDenied)
		deps.verify(t)
	})

	t.Run("generic action endpoint parses the action", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.ApplyAction(ctx, approvalID.String(), approverID.String(), approval.ActionRequest{ActionType: "escalate"})

		assert.ErrorIs(t, err, approvalerrors.ErrUnknownAction)
		deps.verify(t)
	})

	t.Run("invalid approval id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Approve(ctx, "not-a-uuid", approverID.String(), approval.CommentRequest{})

		assert.ErrorIs(t, err, approvalerrors.ErrInvalidApprovalID)
	})
}

func TestApprovalService_SubmitDecisions(t *testing.T) {
	ctx := context.Background()
	actor := profile(approverID, "Wing Head", "Director")
	qty := 6

	t.Run("any returned item returns the whole request", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestStockIssuance, approverID)
		items := []itemdecision.RequestItem{decidedItem(10, ""), decidedItem(5, ""), decidedItem(2, "")}

		expectTx(deps.sqlMock, true)
		deps.expectLockedLoad(a, actor, nil)
		deps.items.EXPECT().WithTx(gomock.Any()).Return(deps.items)
		deps.items.EXPECT().FindByApproval(gomock.Any(), approvalID.String()).Return(items, nil)
		deps.items.EXPECT().SaveAllocations(gomock.Any(), approvalID.String(), approverID.String(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, allocs []itemdecision.Allocation) error {
				require.Len(t, allocs, 3)
				assert.Equal(t, 6, allocs[0].AllocatedQuantity)
				assert.Equal(t, itemdecision.DecisionReturn, allocs[1].DecisionType)
				assert.Equal(t, 0, allocs[1].AllocatedQuantity)
				assert.Equal(t, itemdecision.DefaultReturnReason, allocs[1].RejectionReason)
				return nil
			})
		deps.expectTransition(t, 2, func(h *approval.History) {
			assert.Equal(t, approval.HistoryReturned, h.ActionType)
			assert.Equal(t, "Acting Wing Head", h.ActionByName)
			assert.Equal(t, "Director", h.ActionByDesignation)
			assert.Equal(t, itemdecision.DefaultReturnReason, h.Comments)
		}, func(a *approval.Approval) {
			assert.Equal(t, approval.StatusReturned, a.CurrentStatus)
		})
		expectInvalidate(deps.redisMock, submitterID, approverID)

		resp, err := deps.service.SubmitDecisions(ctx, approvalID.String(), approverID.String(), approval.SubmitDecisionsRequest{
			ApproverName: "Acting Wing Head",
			ItemAllocations: []approval.ItemAllocationInput{
				{RequestedItemID: items[0].ID.String(), DecisionType: "APPROVE_FROM_STOCK", AllocatedQuantity: &qty},
				{RequestedItemID: items[1].ID.String(), DecisionType: "RETURN"},
				{RequestedItemID: items[2].ID.String(), DecisionType: "REJECT"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "returned", resp.CurrentStatus)
		deps.verify(t)
	})

	t.Run("bulk supervisor forward moves the request up", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestStockIssuance, approverID)
		items := []itemdecision.RequestItem{decidedItem(10, ""), decidedItem(5, "")}

		expectTx(deps.sqlMock, true)
		deps.expectLockedLoad(a, actor, nil)
		deps.items.EXPECT().WithTx(gomock.Any()).Return(deps.items)
		deps.items.EXPECT().FindByApproval(gomock.Any(), approvalID.String()).Return(items, nil)
		deps.users.EXPECT().GetSupervisor(gomock.Any(), approverID.String()).Return(profile(supervisorID, "DG", "Director General"), nil)
		deps.items.EXPECT().SaveAllocations(gomock.Any(), approvalID.String(), approverID.String(), gomock.Len(2)).Return(nil)
		deps.expectTransition(t, 2, func(h *approval.History) {
			assert.Equal(t, approval.HistoryForwarded, h.ActionType)
			assert.Equal(t, supervisorID, *h.ForwardedTo)
		}, func(a *approval.Approval) {
			assert.Equal(t, approval.StatusPending, a.CurrentStatus)
			assert.Equal(t, supervisorID, *a.CurrentApproverID)
		})
		expectInvalidate(deps.redisMock, submitterID, approverID, supervisorID)

		_, err := deps.service.SubmitDecisions(ctx, approvalID.String(), approverID.String(), approval.SubmitDecisionsRequest{
			ApproverName: "Wing Head",
			BulkDecision: "forward_supervisor",
		})

		require.NoError(t, err)
		deps.verify(t)
	})

	t.Run("incomplete decisions persist nothing", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestStockIssuance, approverID)
		items := []itemdecision.RequestItem{decidedItem(10, ""), decidedItem(5, ""), decidedItem(2, "")}

		expectTx(deps.sqlMock, false)
		deps.expectLockedLoad(a, actor, nil)
		deps.items.EXPECT().WithTx(gomock.Any()).Return(deps.items)
		deps.items.EXPECT().FindByApproval(gomock.Any(), approvalID.String()).Return(items, nil)

		_, err := deps.service.SubmitDecisions(ctx, approvalID.String(), approverID.String(), approval.SubmitDecisionsRequest{
			ApproverName: "Wing Head",
			ItemAllocations: []approval.ItemAllocationInput{
				{RequestedItemID: items[0].ID.String(), DecisionType: "APPROVE_FROM_STOCK"},
				{RequestedItemID: items[1].ID.String(), DecisionType: "REJECT"},
			},
		})

		assert.ErrorIs(t, err, itemdecisionerrors.ErrDecisionsIncomplete)
		deps.verify(t)
	})

	t.Run("approver name is required", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.SubmitDecisions(ctx, approvalID.String(), approverID.String(), approval.SubmitDecisionsRequest{
			BulkDecision: "approve_wing",
		})

		assert.ErrorIs(t, err, itemdecisionerrors.ErrApproverNameRequired)
		deps.verify(t)
	})

	t.Run("unknown decision type", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.SubmitDecisions(ctx, approvalID.String(), approverID.String(), approval.SubmitDecisionsRequest{
			ApproverName:    "Wing Head",
			ItemAllocations: []approval.ItemAllocationInput{{RequestedItemID: uuid.NewString(), DecisionType: "MAYBE"}},
		})

		assert.ErrorIs(t, err, itemdecisionerrors.ErrUnknownDecision)
	})
}

func TestApprovalService_Submit(t *testing.T) {
	ctx := context.Background()
	submitter := profile(submitterID, "Requester", "Assistant")
	supervisor := profile(supervisorID, "Wing Head", "Director")

	t.Run("stock issuance goes to the submitter's supervisor with items", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.users.EXPECT().GetProfile(gomock.Any(), submitterID.String()).Return(submitter, nil)
		deps.workflows.EXPECT().FindActiveByRequestType(gomock.Any(), "stock_issuance").Return(&workflow.Workflow{ID: workflowID}, nil)
		deps.users.EXPECT().GetSupervisor(gomock.Any(), submitterID.String()).Return(supervisor, nil)

		expectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *approval.Approval) error {
			assert.Equal(t, approval.StatusPending, a.CurrentStatus)
			assert.Equal(t, workflowID, a.WorkflowID)
			assert.Equal(t, testWing, a.WingID)
			assert.Equal(t, supervisorID, *a.CurrentApproverID)
			return nil
		})
		deps.items.EXPECT().WithTx(gomock.Any()).Return(deps.items)
		deps.items.EXPECT().CreateBatch(gomock.Any(), gomock.Len(2)).Return(nil)
		deps.repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h *approval.History) error {
			assert.Equal(t, 1, h.StepNumber)
			assert.Equal(t, approval.HistorySubmitted, h.ActionType)
			assert.True(t, h.IsCurrentStep)
			return nil
		})
		expectInvalidate(deps.redisMock, submitterID, supervisorID)

		resp, err := deps.service.Submit(ctx, submitterID.String(), approval.SubmitRequest{
			RequestID:   "SIR-2024-001",
			RequestType: "stock_issuance",
			Items: []itemdecision.NewItemInput{
				{ItemMasterID: "IM-1", Nomenclature: "A4 paper", RequestedQuantity: 10},
				{ItemMasterID: "IM-2", Nomenclature: "Toner", RequestedQuantity: 2},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.CurrentStatus)
		assert.Equal(t, "individual", resp.ScopeType)
		deps.verify(t)
	})

	t.Run("stock issuance without items", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Submit(ctx, submitterID.String(), approval.SubmitRequest{RequestID: "SIR-1", RequestType: "stock_issuance"})

		assert.ErrorIs(t, err, approvalerrors.ErrItemsRequired)
	})

	t.Run("no active workflow", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.users.EXPECT().GetProfile(gomock.Any(), submitterID.String()).Return(submitter, nil)
		deps.workflows.EXPECT().FindActiveByRequestType(gomock.Any(), "tender").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Submit(ctx, submitterID.String(), approval.SubmitRequest{RequestID: "T-1", RequestType: "tender"})

		assert.ErrorIs(t, err, approvalerrors.ErrNoActiveWorkflow)
	})
}

func TestApprovalService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("detail lists the actions open to the current approver", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, approverID)

		deps.repo.EXPECT().FindByID(ctx, approvalID.String()).Return(a, nil)
		deps.workflows.EXPECT().FindApprover(ctx, workflowID.String(), approverID.String()).
			Return(&workflow.WorkflowApprover{CanApprove: true, CanFinalize: true}, nil)

		resp, err := deps.service.GetByID(ctx, approvalID.String(), approverID.String())

		require.NoError(t, err)
		assert.True(t, resp.IsCurrentApprover)
		assert.ElementsMatch(t, []approval.ActionType{
			approval.ActionApprove, approval.ActionReject, approval.ActionReturn, approval.ActionFinalize,
		}, resp.AllowedActions)
	})

	t.Run("supervisor reached by approval-mode forwarding gets default actions", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := pendingApproval(approval.RequestTender, supervisorID)

		deps.repo.EXPECT().FindByID(ctx, approvalID.String()).Return(a, nil)
		deps.workflows.EXPECT().FindApprover(ctx, workflowID.String(), supervisorID.String()).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().FindCurrentStep(ctx, approvalID.String()).
			Return(&approval.History{StepNumber: 2, ActionType: approval.HistoryForwarded, ForwardingType: approval.ForwardApproval, IsCurrentStep: true}, nil)

		resp, err := deps.service.GetByID(ctx, approvalID.String(), supervisorID.String())

		require.NoError(t, err)
		assert.ElementsMatch(t, []approval.ActionType{
			approval.ActionForward, approval.ActionApprove, approval.ActionReject, approval.ActionReturn,
		}, resp.AllowedActions)
	})

	t.Run("detail for an onlooker has no actions", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, approvalID.String()).Return(pendingApproval(approval.RequestTender, approverID), nil)

		resp, err := deps.service.GetByID(ctx, approvalID.String(), strangerID.String())

		require.NoError(t, err)
		assert.False(t, resp.IsCurrentApprover)
		assert.Empty(t, resp.AllowedActions)
	})

	t.Run("missing approval maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, approvalID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetHistory(ctx, approvalID.String())

		assert.ErrorIs(t, err, approvalerrors.ErrApprovalNotFound)
	})

	t.Run("status lookup by request", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByRequest(ctx, "SIR-2024-001", "stock_issuance").Return(pendingApproval(approval.RequestStockIssuance, approverID), nil)

		resp, err := deps.service.GetStatus(ctx, "SIR-2024-001", "stock_issuance")

		require.NoError(t, err)
		assert.Equal(t, approvalID.String(), resp.ID)
	})

	t.Run("forwarders list the supervisor first and skip the actor", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().FindByID(ctx, approvalID.String()).Return(pendingApproval(approval.RequestTender, approverID), nil)
		deps.users.EXPECT().GetSupervisor(ctx, approverID.String()).Return(profile(supervisorID, "Wing Head", "Director"), nil)
		deps.workflows.EXPECT().ListApprovers(ctx, workflowID.String()).Return([]workflow.WorkflowApprover{
			{UserID: approverID, UserName: "Me", CanForward: true},
			{UserID: supervisorID, UserName: "Wing Head", CanApprove: true},
			{UserID: strangerID, UserName: "Store Keeper", CanFinalize: true},
		}, nil)

		resp, err := deps.service.GetAvailableForwarders(ctx, approvalID.String(), approverID.String())

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, approval.ForwarderSourceSupervisor, resp[0].Source)
		assert.Equal(t, strangerID.String(), resp[1].UserID)
		assert.True(t, resp[1].CanFinalize)
	})

	t.Run("forwarders without a supervisor", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().FindByID(ctx, approvalID.String()).Return(pendingApproval(approval.RequestTender, approverID), nil)
		deps.users.EXPECT().GetSupervisor(ctx, approverID.String()).Return(user.Profile{}, approvalerrors.ErrNoSupervisorFound)
		deps.workflows.EXPECT().ListApprovers(ctx, workflowID.String()).Return(nil, nil)

		resp, err := deps.service.GetAvailableForwarders(ctx, approvalID.String(), approverID.String())

		require.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestApprovalService_StepSequence(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	actor := profile(approverID, "Section Head", "Deputy Director")
	supervisor := profile(supervisorID, "Wing Head", "Director")
	a := pendingApproval(approval.RequestProcurement, approverID)

	history := []*approval.History{{StepNumber: 1, ActionType: approval.HistorySubmitted, IsCurrentStep: true}}
	cleared := false
	deps.repo.EXPECT().NextStepNumber(gomock.Any(), approvalID.String()).
		DoAndReturn(func(context.Context, string) (int, error) {
			return history[len(history)-1].StepNumber + 1, nil
		}).Times(2)
	deps.repo.EXPECT().ClearCurrentStep(gomock.Any(), approvalID.String()).
		DoAndReturn(func(context.Context, string) error {
			for _, h := range history {
				h.IsCurrentStep = false
			}
			cleared = true
			return nil
		}).Times(2)
	deps.repo.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *approval.History) error {
			assert.True(t, cleared, "current step must be cleared before appending")
			cleared = false
			history = append(history, h)
			return nil
		}).Times(2)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	expectTx(deps.sqlMock, true)
	deps.expectLockedLoad(a, actor, nil)
	deps.users.EXPECT().GetSupervisor(gomock.Any(), approverID.String()).Return(supervisor, nil)
	expectInvalidate(deps.redisMock, submitterID, approverID, supervisorID)

	_, err := deps.service.Forward(ctx, approvalID.String(), approverID.String(), approval.ForwardRequest{})
	require.NoError(t, err)

	expectTx(deps.sqlMock, true)
	deps.expectLockedLoad(a, supervisor, nil)
	expectInvalidate(deps.redisMock, submitterID, supervisorID)

	resp, err := deps.service.Approve(ctx, approvalID.String(), supervisorID.String(), approval.CommentRequest{})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.CurrentStatus)

	require.Len(t, history, 3)
	current := 0
	for i, h := range history {
		assert.Equal(t, i+1, h.StepNumber)
		if h.IsCurrentStep {
			current++
		}
	}
	assert.Equal(t, 1, current)
	assert.Equal(t, approval.HistoryForwarded, history[1].ActionType)
	assert.Equal(t, approval.HistoryApproved, history[2].ActionType)
	assert.True(t, history[2].IsCurrentStep)
	deps.verify(t)
}
