package workflow_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-invmis/internal/shared/apperror"
	"go-invmis/internal/user"
	"go-invmis/internal/workflow"
	workflowerrors "go-invmis/internal/workflow/errors"
	workflowMock "go-invmis/internal/workflow/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeProfiles struct {
	profiles map[string]user.Profile
}

func (f *fakeProfiles) GetProfile(ctx context.Context, id string) (user.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return user.Profile{}, apperror.ErrNotFound
	}
	return p, nil
}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   workflow.Service
	repo      *workflowMock.MockRepository
	redismock redismock.ClientMock
	profiles  *fakeProfiles
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := workflowMock.NewMockRepository(ctrl)
	profiles := &fakeProfiles{profiles: map[string]user.Profile{}}

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   workflow.NewService(db, repo, profiles, rdb),
		repo:      repo,
		redismock: redisMock,
		profiles:  profiles,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestWorkflowService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	approverID := uuid.New().String()

	t.Run("creates workflow with approvers in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.profiles.profiles[approverID] = user.Profile{ID: approverID, FullName: "DG Admin", Designation: "Director General"}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, wf *workflow.Workflow) error {
			assert.Equal(t, "Stock issuance", wf.Name)
			assert.True(t, wf.IsActive)
			require.NotNil(t, wf.CreatedBy)
			assert.Equal(t, actorID, wf.CreatedBy.String())
			return nil
		})
		deps.repo.EXPECT().AddApprover(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *workflow.WorkflowApprover) error {
			assert.Equal(t, "DG Admin", a.UserName)
			assert.True(t, a.CanFinalize)
			return nil
		})
		deps.redismock.ExpectDel(workflow.WorkflowListCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, actorID, workflow.CreateWorkflowRequest{
			Name:        "Stock issuance",
			RequestType: "stock_issuance",
			Approvers:   []workflow.ApproverInput{{UserID: approverID, CanApprove: true, CanFinalize: true}},
		})

		require.NoError(t, err)
		assert.Len(t, resp.Approvers, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("approver without capability is rejected before the transaction", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, actorID, workflow.CreateWorkflowRequest{
			Name:        "Tender",
			RequestType: "tender",
			Approvers:   []workflow.ApproverInput{{UserID: approverID}},
		})

		assert.ErrorIs(t, err, workflowerrors.ErrApproverWithoutCapability)
		assert.True(t, apperror.Is(err, apperror.CodeValidation))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_workflow_name"})

		_, err := deps.service.Create(ctx, actorID, workflow.CreateWorkflowRequest{Name: "Dup", RequestType: "tender"})

		assert.ErrorIs(t, err, workflowerrors.ErrWorkflowNameExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestWorkflowService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit filters by request type", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached, _ := json.Marshal([]workflow.WorkflowResponse{
			{ID: "w1", Name: "Issuance", RequestType: "stock_issuance"},
			{ID: "w2", Name: "Tender", RequestType: "tender"},
		})
		deps.redismock.ExpectGet(workflow.WorkflowListCacheKey).SetVal(string(cached))

		resp, err := deps.service.GetAll(ctx, "tender")

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "w2", resp[0].ID)
	})

	t.Run("cache miss reads repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		wfID := uuid.New()
		payload, err := json.Marshal([]workflow.WorkflowResponse{{
			ID:          wfID.String(),
			Name:        "Issuance",
			RequestType: "stock_issuance",
			CreatedAt:   time.Time{}.Format(time.RFC3339),
			Approvers:   []workflow.ApproverResponse{},
		}})
		require.NoError(t, err)

		deps.redismock.ExpectGet(workflow.WorkflowListCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return([]workflow.Workflow{{ID: wfID, Name: "Issuance", RequestType: "stock_issuance"}}, nil)
		deps.redismock.ExpectSet(workflow.WorkflowListCacheKey, payload, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, "")

		require.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(workflow.WorkflowListCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx, "")

		assert.Error(t, err)
	})
}

func TestWorkflowService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.GetByID(ctx, "x")
		assert.ErrorIs(t, err, workflowerrors.ErrInvalidWorkflowID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New().String()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, workflowerrors.ErrWorkflowNotFound)
	})
}

func TestWorkflowService_Approvers(t *testing.T) {
	ctx := context.Background()
	wfID := uuid.New()
	userID := uuid.New().String()

	t.Run("update requires a capability", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.UpdateApprover(ctx, wfID.String(), userID, workflow.UpdateApproverRequest{})

		assert.ErrorIs(t, err, workflowerrors.ErrApproverWithoutCapability)
	})

	t.Run("update unknown approver", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindApprover(ctx, wfID.String(), userID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateApprover(ctx, wfID.String(), userID, workflow.UpdateApproverRequest{CanForward: true})

		assert.ErrorIs(t, err, workflowerrors.ErrApproverNotFound)
	})

	t.Run("update flips flags", func(t *testing.T) {
		deps := setupServiceTest(t)
		existing := &workflow.WorkflowApprover{ID: uuid.New(), WorkflowID: wfID, UserID: uuid.MustParse(userID), CanApprove: true}
		deps.repo.EXPECT().FindApprover(ctx, wfID.String(), userID).Return(existing, nil)
		deps.repo.EXPECT().UpdateApprover(ctx, existing).Return(nil)
		deps.redismock.ExpectDel(workflow.WorkflowListCacheKey).SetVal(1)

		resp, err := deps.service.UpdateApprover(ctx, wfID.String(), userID, workflow.UpdateApproverRequest{CanForward: true, CanFinalize: true})

		require.NoError(t, err)
		assert.False(t, resp.CanApprove)
		assert.True(t, resp.CanForward)
		assert.True(t, resp.CanFinalize)
	})

	t.Run("add duplicate approver", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.profiles.profiles[userID] = user.Profile{ID: userID, FullName: "Store Keeper"}
		deps.repo.EXPECT().FindByID(ctx, wfID.String()).Return(&workflow.Workflow{ID: wfID}, nil)
		deps.repo.EXPECT().AddApprover(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_workflow_approver"})

		_, err := deps.service.AddApprover(ctx, wfID.String(), workflow.ApproverInput{UserID: userID, CanApprove: true})

		assert.ErrorIs(t, err, workflowerrors.ErrApproverExists)
	})

	t.Run("remove missing approver", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().RemoveApprover(ctx, wfID.String(), userID).Return(int64(0), nil)

		err := deps.service.RemoveApprover(ctx, wfID.String(), userID)

		assert.ErrorIs(t, err, workflowerrors.ErrApproverNotFound)
	})
}

func TestWorkflowService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	id := uuid.New().String()

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().CountApprovals(ctx, id).Return(int64(0), nil)
	deps.repo.EXPECT().Delete(ctx, id).Return(nil)
	deps.redismock.ExpectDel(workflow.WorkflowListCacheKey).SetVal(1)

	err := deps.service.Delete(ctx, id)

	assert.NoError(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestWorkflowService_Delete_ReferencedByApprovals(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	id := uuid.New().String()

	expectTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().CountApprovals(ctx, id).Return(int64(3), nil)

	err := deps.service.Delete(ctx, id)

	assert.ErrorIs(t, err, workflowerrors.ErrWorkflowInUse)
	assert.Equal(t, 409, apperror.ToHTTP(err).Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}
