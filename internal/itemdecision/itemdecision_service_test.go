package itemdecision_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"go-invmis/internal/itemdecision"
	itemdecisionerrors "go-invmis/internal/itemdecision/errors"
	"go-invmis/internal/itemdecision/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestService_ListByApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid approval id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := itemdecision.NewService(mock.NewMockRepository(ctrl))

		_, err := svc.ListByApproval(ctx, "nope")

		assert.ErrorIs(t, err, itemdecisionerrors.ErrInvalidApprovalID)
	})

	t.Run("returns items with summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := itemdecision.NewService(repo)

		items := newItems(2)
		stock := string(itemdecision.DecisionApproveFromStock)
		items[0].DecisionType = &stock
		approvalID := items[0].ApprovalID.String()
		repo.EXPECT().FindByApproval(ctx, approvalID).Return(items, nil)

		resp, err := svc.ListByApproval(ctx, approvalID)

		require.NoError(t, err)
		assert.Len(t, resp.Items, 2)
		assert.Equal(t, itemdecision.KindApproveWing, resp.Items[0].Decision)
		assert.Equal(t, itemdecision.Summary{ApproveWing: 1, Undecided: 1}, resp.Summary)
		assert.False(t, resp.Complete)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := itemdecision.NewService(repo)
		id := uuid.New().String()
		repo.EXPECT().FindByApproval(ctx, id).Return(nil, errors.New("db down"))

		_, err := svc.ListByApproval(ctx, id)

		assert.Error(t, err)
	})
}

func TestHandler_GetByApproval(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := itemdecision.NewService(mock.NewMockRepository(ctrl))
	h := itemdecision.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/approval-items/bad", nil)
	c.Params = gin.Params{{Key: "id", Value: "bad"}}

	h.GetByApproval(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func newGormMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *gorm.DB) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return sqlDB, mock, gdb
}

func TestRepository_SaveAllocations(t *testing.T) {
	ctx := context.Background()
	approvalID := uuid.New().String()
	alloc := itemdecision.Allocation{ItemID: uuid.New().String(), AllocatedQuantity: 5, DecisionType: itemdecision.DecisionApproveFromStock}

	t.Run("updates inside the caller's transaction", func(t *testing.T) {
		sqlDB, mock, gdb := newGormMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "request_items" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := sqlDB.Begin()
		require.NoError(t, err)

		err = itemdecision.NewRepository(gdb).WithTx(tx).SaveAllocations(ctx, approvalID, uuid.New().String(), []itemdecision.Allocation{alloc})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("item outside approval", func(t *testing.T) {
		sqlDB, mock, gdb := newGormMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "request_items" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		tx, err := sqlDB.Begin()
		require.NoError(t, err)

		err = itemdecision.NewRepository(gdb).WithTx(tx).SaveAllocations(ctx, approvalID, "", []itemdecision.Allocation{alloc})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
