package issuance

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
	issuance := r.Group("/issuance")
	issuance.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		issuance.GET("/failures", middleware.RBACAuthorize(rbacService, "issuance", "read"), handler.ListFailures)
		issuance.POST("/failures/:id/resolve", middleware.RBACAuthorize(rbacService, "issuance", "resolve"), handler.ResolveFailure)
	}
}
