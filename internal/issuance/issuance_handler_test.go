package issuance_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-invmis/internal/issuance"
	issuanceerrors "go-invmis/internal/issuance/errors"
	issuanceMock "go-invmis/internal/issuance/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newHandlerContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id_validated", approverID.String())
	return c, w
}

func TestIssuanceHandler_ListFailures(t *testing.T) {
	t.Run("paginates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := issuanceMock.NewMockService(ctrl)
		h := issuance.NewHandler(svc)

		svc.EXPECT().ListFailures(gomock.Any(), issuance.ListFailuresQuery{Page: 2, Limit: 10}).
			Return([]issuance.FailureResponse{{ID: failureID.String()}}, int64(11), nil)

		c, w := newHandlerContext(http.MethodGet, "/issuance/failures?page=2&limit=10", "")

		h.ListFailures(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalPages":2`)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := issuance.NewHandler(issuanceMock.NewMockService(ctrl))

		c, w := newHandlerContext(http.MethodGet, "/issuance/failures?status=closed", "")

		h.ListFailures(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIssuanceHandler_ResolveFailure(t *testing.T) {
	t.Run("note is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := issuance.NewHandler(issuanceMock.NewMockService(ctrl))

		c, w := newHandlerContext(http.MethodPost, "/issuance/failures/x/resolve", `{}`)

		h.ResolveFailure(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict when already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := issuanceMock.NewMockService(ctrl)
		h := issuance.NewHandler(svc)

		svc.EXPECT().ResolveFailure(gomock.Any(), failureID.String(), approverID.String(), issuance.ResolveFailureRequest{Note: "done"}).
			Return(issuance.FailureResponse{}, issuanceerrors.ErrFailureAlreadyResolved)

		c, w := newHandlerContext(http.MethodPost, "/issuance/failures/"+failureID.String()+"/resolve", `{"note":"done"}`)
		c.Params = gin.Params{{Key: "id", Value: failureID.String()}}

		h.ResolveFailure(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"CONFLICT"`)
	})
}
