package itemdecision

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
	l := zap.L().Named("itemdecision.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("itemdecision.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetByApproval(c *gin.Context) {
	resp, err := h.service.ListByApproval(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("list request items failed",
			zap.String("approval_id", c.Param("id")),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
