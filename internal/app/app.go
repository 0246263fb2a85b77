package app

import (
	"go-attendance/internal/config"
	"go-attendance/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on the
// router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}

	if err := registerModules(router, sqlDB, gormDB, rdb, cfg); err != nil {
		return err
	}

	zap.L().Info("app built", zap.String("port", cfg.Port))
	return nil
}
