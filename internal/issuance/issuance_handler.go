package issuance

import (
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
	l := zap.L().Named("issuance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("issuance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("issuance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListFailures(c *gin.Context) {
	var q ListFailuresQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http list issuance failures validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, total, err := h.service.ListFailures(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, limit := q.Page, q.Limit
	if page <= 0 {
		page = defaultFailurePage
	}
	if limit <= 0 {
		limit = defaultFailureLimit
	}
	meta := response.NewPaginationMeta(total, page, limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) ResolveFailure(c *gin.Context) {
	var req ResolveFailureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http resolve issuance failure validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.ResolveFailure(c.Request.Context(), c.Param("id"), c.GetString("user_id_validated"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
