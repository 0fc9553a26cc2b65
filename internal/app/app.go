package app

import (
	"go-invmis/internal/config"
	"go-invmis/internal/middleware"
	"go-invmis/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg *config.Config) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// 2. Global middleware, then modules & routes
	router.Use(middleware.RequestID())

	return registerModules(router, cfg, sqlDB, gormDB, redisClient, zap.L())
}
