package dashboard

import (
	"go-invmis/internal/middleware"
	"go-invmis/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	authMW gin.HandlerFunc,
	logger *zap.Logger,
) {
	dash := r.Group("/approvals/dashboard")
	dash.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		dash.GET("",
			middleware.RateLimitByUser(5, 10),
			middleware.RBACAuthorize(rbacService, "approval", "read"),
			handler.GetView,
		)
		dash.GET("/summary",
			middleware.RateLimitByUser(5, 10),
			middleware.RBACAuthorize(rbacService, "approval", "read"),
			handler.GetSummary,
		)
		dash.GET("/export",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "approval", "read"),
			handler.Export,
		)
	}
}
