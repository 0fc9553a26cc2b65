package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-invmis/internal/config"
	"go-invmis/internal/issuance"
	"go-invmis/internal/messaging/kafka"
	"go-invmis/internal/messaging/kafka/producer"
	"go-invmis/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunWorker publishes outbox events to Kafka and runs the scheduled
// issuance reconciliation report.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	reconciler := issuance.NewReconciler(issuance.NewRepository(gormDB), outboxRepo, logger)

	scheduler := cron.New()
	if _, err := reconciler.Schedule(scheduler, cfg.Reconciliation.Schedule); err != nil {
		return err
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		producer.WorkerConfig{
			PollInterval: cfg.Kafka.PollInterval,
			MaxAttempts:  cfg.Kafka.MaxPublishAttempts,
		},
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
