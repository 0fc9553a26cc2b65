package itemdecision

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
	items := r.Group("/approval-items")
	items.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		items.GET("/:id", middleware.RBACAuthorize(rbacService, "approval", "read"), handler.GetByApproval)
	}
}
