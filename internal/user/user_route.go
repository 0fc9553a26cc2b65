package user

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
	users := r.Group("/users")
	users.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.GetAll,
		)

		users.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.GetById,
		)
	}

	// Supervisor lookup keeps the singular path used by the approval UI.
	single := r.Group("/user")
	single.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		single.GET("/:id/supervisor",
			middleware.RateLimitByUser(5, 10),
			handler.GetSupervisor,
		)
	}
}
