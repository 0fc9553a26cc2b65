package approval

import (
	"time"

	"go-invmis/internal/middleware"
	"go-invmis/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const actionIdempotencyTTL = 24 * time.Hour

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	authMW gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	// Action routes replay a repeated Idempotency-Key when redis is wired.
	action := []gin.HandlerFunc{middleware.RateLimitByUser(2, 5)}
	if rdb != nil {
		action = append(action, middleware.Idempotency(rdb, actionIdempotencyTTL))
	}
	guard := func(act string, h gin.HandlerFunc) []gin.HandlerFunc {
		chain := append([]gin.HandlerFunc{}, action...)
		return append(chain, middleware.RBACAuthorize(rbacService, "approval", act), h)
	}

	approvals := r.Group("/approvals")
	approvals.Use(authMW, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		approvals.POST("/submit", guard("submit", handler.Submit)...)

		approvals.GET("/my-pending",
			middleware.RateLimitByUser(5, 10),
			middleware.RBACAuthorize(rbacService, "approval", "read"),
			handler.GetMyPending,
		)
		approvals.GET("/status", middleware.RBACAuthorize(rbacService, "approval", "read"), handler.GetStatus)
		approvals.GET("/:id", middleware.RBACAuthorize(rbacService, "approval", "read"), handler.GetById)
		approvals.GET("/:id/history", middleware.RBACAuthorize(rbacService, "approval", "read"), handler.GetHistory)
		approvals.GET("/:id/available-forwarders", middleware.RBACAuthorize(rbacService, "approval", "read"), handler.GetAvailableForwarders)

		approvals.POST("/:id/forward", guard("act", handler.Forward)...)
		approvals.POST("/:id/approve", guard("act", handler.Approve)...)
		approvals.POST("/:id/reject", guard("act", handler.Reject)...)
		approvals.POST("/:id/return", guard("act", handler.Return)...)
		approvals.POST("/:id/finalize", guard("act", handler.Finalize)...)
		approvals.POST("/:id/actions", guard("act", handler.ApplyAction)...)
		approvals.POST("/:id/item-decisions", guard("act", handler.SubmitDecisions)...)
	}
}
