package app

import (
	"database/sql"

	"go-invmis/internal/approval"
	"go-invmis/internal/auth"
	"go-invmis/internal/config"
	"go-invmis/internal/dashboard"
	"go-invmis/internal/issuance"
	"go-invmis/internal/itemdecision"
	"go-invmis/internal/messaging/kafka"
	"go-invmis/internal/middleware"
	"go-invmis/internal/rbac"
	"go-invmis/internal/rbac/infra"
	"go-invmis/internal/user"
	"go-invmis/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	workflowRepo := workflow.NewRepository(gormDB)
	approvalRepo := approval.NewRepository(gormDB)
	itemRepo := itemdecision.NewRepository(gormDB)
	issuanceRepo := issuance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBAC.ModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService, auth.TokenConfig{
		Secret:     cfg.Auth.JWTSecret,
		AccessTTL:  cfg.Auth.AccessTTL,
		RefreshTTL: cfg.Auth.RefreshTTL,
	}, logger)
	userService := user.NewService(userRepo, rdb, logger)
	workflowService := workflow.NewService(db, workflowRepo, userService, rdb, logger)
	approvalService := approval.NewService(db, approvalRepo, itemRepo, workflowRepo, userService, outboxRepo, rdb, logger)
	itemService := itemdecision.NewService(itemRepo, logger)
	dashboardService := dashboard.NewService(approvalRepo, rdb, dashboard.Options{
		PageSize: cfg.Dashboard.PageSize,
		CacheTTL: cfg.Dashboard.CacheTTL,
	}, logger)
	issuanceService := issuance.NewService(issuanceRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	userHandler := user.NewHandler(userService, logger)
	workflowHandler := workflow.NewHandler(workflowService, logger)
	approvalHandler := approval.NewHandler(approvalService, logger)
	itemHandler := itemdecision.NewHandler(itemService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	issuanceHandler := issuance.NewHandler(issuanceService, logger)

	// --- Routes Registration ---
	authMW := middleware.AuthMiddleware(cfg.Auth.JWTSecret)

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, authMW)
		user.RegisterRoutes(api, userHandler, rbacService, authMW, logger)
		workflow.RegisterRoutes(api, workflowHandler, rbacService, authMW, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, authMW, logger)
		approval.RegisterRoutes(api, approvalHandler, rbacService, authMW, rdb, logger)
		itemdecision.RegisterRoutes(api, itemHandler, rbacService, authMW, logger)
		issuance.RegisterRoutes(api, issuanceHandler, rbacService, authMW, logger)
	}

	return nil
}
