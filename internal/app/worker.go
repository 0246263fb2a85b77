package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/config"
	"go-attendance/internal/employee"
	"go-attendance/internal/leave"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/messaging/kafka/producer"
	"go-attendance/internal/qrcode"
	"go-attendance/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunWorker runs the outbox publisher and the daily absence sweep in one
// process.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	qrcodeRepo := qrcode.NewRepository(gormDB)
	leaveService := leave.NewService(sqlDB, leaveRepo, outboxRepo, cfg.Leave)
	qrcodeService := qrcode.NewService(qrcodeRepo, cfg.QR)
	attendanceRepo := attendance.NewRepository(gormDB)
	attendanceService := attendance.NewService(
		sqlDB, attendanceRepo, outboxRepo,
		employeeRepo, leaveService, qrcodeService,
		cfg.Office,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.SweepCron, func() {
		sweepCtx, sweepCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer sweepCancel()

		marked, err := attendanceService.MarkAbsentEmployees(sweepCtx, time.Now().UTC())
		if err != nil {
			logger.Error("absence sweep failed", zap.Error(err))
			return
		}
		logger.Info("absence sweep run", zap.Int("marked", marked))
	}); err != nil {
		return fmt.Errorf("schedule absence sweep: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
