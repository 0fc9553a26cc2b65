package rbac

import (
	"go-invmis/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService Service, authMW gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(authMW)
	{
		group.POST("/enforce", middleware.RBACAuthorize(rbacService, "rbac", "read"), handler.Enforce)
		group.GET("/permissions", handler.Permissions)
	}
}
