package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-attendance/internal/config"
	"go-attendance/internal/employee"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka/consumer"
	"go-attendance/internal/notification"
	"go-attendance/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer materializes notification events: one reader per topic, all
// feeding the dispatcher.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

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

	employeeRepo := employee.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	mailer := notification.NewSMTPMailer(cfg.SMTP)
	dispatcher := notification.NewDispatcher(notificationRepo, employeeRepo, mailer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subscriptions := []struct {
		topic   string
		handler consumer.Handler
	}{
		{events.AttendanceLateTopic, dispatcher.HandleAttendanceLate},
		{events.LeaveRequestedTopic, dispatcher.HandleLeaveRequested},
		{events.LeaveApprovedTopic, dispatcher.HandleLeaveApproved},
		{events.LeaveRejectedTopic, dispatcher.HandleLeaveRejected},
	}

	for _, sub := range subscriptions {
		reader := kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{cfg.KafkaBroker},
			Topic:          sub.topic,
			GroupID:        "go-attendance-notifications",
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
		defer reader.Close()

		go consumer.Run(ctx, reader, sub.handler, logger)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
