package workflow_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-invmis/internal/workflow"
	workflowerrors "go-invmis/internal/workflow/errors"
	workflowMock "go-invmis/internal/workflow/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newHandlerContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestWorkflowHandler_Create(t *testing.T) {
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := workflowMock.NewMockService(ctrl)
		h := workflow.NewHandler(svc)

		svc.EXPECT().Create(gomock.Any(), actorID, gomock.Any()).
			DoAndReturn(func(_ any, _ string, req workflow.CreateWorkflowRequest) (workflow.WorkflowResponse, error) {
				assert.Equal(t, "procurement", req.RequestType)
				return workflow.WorkflowResponse{ID: "w1", Name: req.Name, RequestType: req.RequestType}, nil
			})

		c, w := newHandlerContext(http.MethodPost, "/workflows", `{"name":"Procurement","request_type":"procurement"}`)
		c.Set("user_id_validated", actorID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
	})

	t.Run("unknown request type fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := workflow.NewHandler(workflowMock.NewMockService(ctrl))

		c, w := newHandlerContext(http.MethodPost, "/workflows", `{"name":"X","request_type":"leave"}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := workflowMock.NewMockService(ctrl)
		h := workflow.NewHandler(svc)

		svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(workflow.WorkflowResponse{}, workflowerrors.ErrWorkflowNameExists)

		c, w := newHandlerContext(http.MethodPost, "/workflows", `{"name":"Dup","request_type":"tender"}`)

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestWorkflowHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := workflowMock.NewMockService(ctrl)
	h := workflow.NewHandler(svc)

	svc.EXPECT().GetAll(gomock.Any(), "tender").Return([]workflow.WorkflowResponse{{ID: "w2"}}, nil)

	c, w := newHandlerContext(http.MethodGet, "/workflows?request_type=tender", "")

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got []workflow.WorkflowResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 1)
}

func TestWorkflowHandler_Approvers(t *testing.T) {
	wfID := uuid.New().String()
	userID := uuid.New().String()

	t.Run("add approver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := workflowMock.NewMockService(ctrl)
		h := workflow.NewHandler(svc)

		svc.EXPECT().AddApprover(gomock.Any(), wfID, workflow.ApproverInput{UserID: userID, CanForward: true}).
			Return(workflow.ApproverResponse{UserID: userID, CanForward: true}, nil)

		c, w := newHandlerContext(http.MethodPost, "/workflows/"+wfID+"/approvers", `{"user_id":"`+userID+`","can_forward":true}`)
		c.Params = gin.Params{{Key: "id", Value: wfID}}

		h.AddApprover(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("remove missing approver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := workflowMock.NewMockService(ctrl)
		h := workflow.NewHandler(svc)

		svc.EXPECT().RemoveApprover(gomock.Any(), wfID, userID).Return(workflowerrors.ErrApproverNotFound)

		c, w := newHandlerContext(http.MethodDelete, "/workflows/"+wfID+"/approvers/"+userID, "")
		c.Params = gin.Params{{Key: "id", Value: wfID}, {Key: "user_id", Value: userID}}

		h.RemoveApprover(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.NotNil(t, env.Error)
	})
}
