package approval

import (
	"errors"
	"io"
	"net/http"

	"go-invmis/internal/shared/apperror"
	"go-invmis/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("approval.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("approval request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) validationError(c *gin.Context, op string, err error) {
	h.logger.Warn("http "+op+" validation failed", zap.Error(err))
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
}

// bindOptional accepts an empty body for endpoints whose payload is optional.
func bindOptional(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationError(c, "submit approval", err)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), c.GetString("user_id_validated"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"), c.GetString("user_id_validated"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	resp, err := h.service.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetStatus(c *gin.Context) {
	resp, err := h.service.GetStatus(c.Request.Context(), c.Query("request_id"), c.Query("request_type"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMyPending(c *gin.Context) {
	resp, err := h.service.ListMyPending(c.Request.Context(), c.GetString("user_id_validated"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAvailableForwarders(c *gin.Context) {
	resp, err := h.service.GetAvailableForwarders(c.Request.Context(), c.Param("id"), c.GetString("user_id_validated"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ApplyAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationError(c, "approval action", err)
		return
	}

	resp, err := h.service.ApplyAction(c.Request.Context(), c.Param("id"), c.GetString("user_id_validated"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Forward(c *gin.Context) {
	var req ForwardRequest
	if err := bindOptional(c, &req); err != nil {
		h.validationError(c, "forward approval", err)
		return
	}

	resp, err := h.service.Forward(c.Request.Context(), c.Param("id"), c.GetString("user_id_validated"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Approve takes either plain comments or a per-item decision batch.
func (h *Handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := bindOptional(c, &req); err != nil {
		h.validationError(c, "approve approval", err)
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	actorID := c.GetString("user_id_validated")

	var (
		resp ApprovalResponse
		err  error
	)
	if req.HasDecisions() {
		batch := req.SubmitDecisionsRequest
		if batch.ApprovalComments == "" {
			batch.ApprovalComments = req.Comments
		}
		resp, err = h.service.SubmitDecisions(ctx, id, actorID, batch)
	} else {
		resp, err = h.service.Approve(ctx, id, actorID, CommentRequest{Comments: req.Comments})
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) commentAction(c *gin.Context, op string, fn func(c *gin.Context, req CommentRequest) (ApprovalResponse, error)) {
	var req CommentRequest
	if err := bindOptional(c, &req); err != nil {
		h.validationError(c, op, err)
		return
	}

	resp, err := fn(c, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	h.commentAction(c, "reject approval", func(c *gin.Context, req CommentRequest) (ApprovalResponse, error) {
		return h.service.Reject(c.Request.Context(), c.Param("id"), c.GetString("user_id_validated"), req)
	})
}

func (h *Handler) Return(c *gin.Context) {
	h.commentAction(c, "return approval", func(c *gin.Context, req CommentRequest) (ApprovalResponse, error) {
		return h.service.Return(c.Request.Context(), c.Param("id"), c.GetString("user_id_validated"), req)
	})
}

func (h *Handler) Finalize(c *gin.Context) {
	h.commentAction(c, "finalize approval", func(c *gin.Context, req CommentRequest) (ApprovalResponse, error) {
		return h.service.Finalize(c.Request.Context(), c.Param("id"), c.GetString("user_id_validated"), req)
	})
}

func (h *Handler) SubmitDecisions(c *gin.Context) {
	var req SubmitDecisionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationError(c, "submit item decisions", err)
		return
	}

	resp, err := h.service.SubmitDecisions(c.Request.Context(), c.Param("id"), c.GetString("user_id_validated"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
