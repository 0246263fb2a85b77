package app

import (
	"database/sql"

	"go-attendance/internal/attendance"
	"go-attendance/internal/auth"
	"go-attendance/internal/config"
	"go-attendance/internal/employee"
	"go-attendance/internal/leave"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/middleware"
	"go-attendance/internal/notification"
	"go-attendance/internal/qrcode"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	qrcodeRepo := qrcode.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewService(employeeRepo)
	authService := auth.NewService(employeeRepo, cfg.Auth)
	qrcodeService := qrcode.NewService(qrcodeRepo, cfg.QR)
	leaveService := leave.NewService(db, leaveRepo, outboxRepo, cfg.Leave)
	attendanceService := attendance.NewService(
		db, attendanceRepo, outboxRepo,
		employeeRepo, leaveService, qrcodeService,
		cfg.Office,
	)
	notificationService := notification.NewService(notificationRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	authHandler := auth.NewHandler(authService)
	qrcodeHandler := qrcode.NewHandler(qrcodeService)
	leaveHandler := leave.NewHandler(leaveService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	notificationHandler := notification.NewHandler(notificationService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.Auth.JWTSecret)
		employee.RegisterRoutes(api, employeeHandler, enforcer, cfg.Auth.JWTSecret)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer, cfg.Auth.JWTSecret, rdb)
		leave.RegisterRoutes(api, leaveHandler, enforcer, cfg.Auth.JWTSecret, rdb)
		qrcode.RegisterRoutes(api, qrcodeHandler, enforcer, cfg.Auth.JWTSecret)
		notification.RegisterRoutes(api, notificationHandler, enforcer, cfg.Auth.JWTSecret)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return nil
}
