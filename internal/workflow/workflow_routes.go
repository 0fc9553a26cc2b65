package workflow

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
	workflows := r.Group("/workflows")
	workflows.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		workflows.GET("", middleware.RBACAuthorize(rbacService, "workflow", "read"), handler.GetAll)
		workflows.GET("/:id", middleware.RBACAuthorize(rbacService, "workflow", "read"), handler.GetById)
		workflows.POST("", middleware.RBACAuthorize(rbacService, "workflow", "create"), handler.Create)
		workflows.PUT("/:id", middleware.RBACAuthorize(rbacService, "workflow", "update"), handler.Update)
		workflows.DELETE("/:id", middleware.RBACAuthorize(rbacService, "workflow", "delete"), handler.Delete)

		workflows.GET("/:id/approvers", middleware.RBACAuthorize(rbacService, "workflow", "read"), handler.ListApprovers)
		workflows.POST("/:id/approvers", middleware.RBACAuthorize(rbacService, "workflow", "update"), handler.AddApprover)
		workflows.PUT("/:id/approvers/:user_id", middleware.RBACAuthorize(rbacService, "workflow", "update"), handler.UpdateApprover)
		workflows.DELETE("/:id/approvers/:user_id", middleware.RBACAuthorize(rbacService, "workflow", "update"), handler.RemoveApprover)
	}
}
