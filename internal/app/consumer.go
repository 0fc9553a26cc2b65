package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-invmis/internal/config"
	"go-invmis/internal/events"
	"go-invmis/internal/issuance"
	"go-invmis/internal/messaging/kafka/consumer"
	"go-invmis/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer feeds approved stock issuances to the issuance coordinator.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.Inventory.BaseURL == "" {
		return fmt.Errorf("INVENTORY_BASE_URL is required")
	}

	coordinator := issuance.NewCoordinator(
		issuance.NewRepository(gormDB),
		issuance.NewInventoryClient(cfg.Inventory, logger),
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.ApprovalApprovedTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeApprovalApproved(ctx, reader, coordinator, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
