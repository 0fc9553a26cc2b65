package dashboard

import (
	"net/http"
	"time"

	"go-invmis/internal/shared/apperror"
	"go-invmis/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func actorFrom(c *gin.Context) Actor {
	return Actor{ID: c.GetString("user_id_validated"), WingID: c.GetString("wing_id")}
}

func (h *Handler) bindFilter(c *gin.Context) (ViewFilter, bool) {
	var f ViewFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		h.logger.Warn("http dashboard query validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return f, false
	}
	return f, true
}

func (h *Handler) GetView(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.LoadApprovalView(c.Request.Context(), actorFrom(c), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSummary(c *gin.Context) {
	resp, err := h.service.GetSummary(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Export(c *gin.Context) {
	f, ok := h.bindFilter(c)
	if !ok {
		return
	}

	body, err := h.service.Export(c.Request.Context(), actorFrom(c), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := "approvals-" + time.Now().Format("20060102") + ".xlsx"
	response.File(c, filename, xlsxContentType, body)
}
