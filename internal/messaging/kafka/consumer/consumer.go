package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-invmis/internal/events"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer loops need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Handler failures are retried in place: kafka-go commits offsets per
// partition, so moving on to the next message would skip the failed one.
var (
	retryBaseDelay = time.Second
	retryMaxDelay  = 30 * time.Second
)

type ApprovalApprovedHandler interface {
	Handle(ctx context.Context, event events.ApprovalApprovedEvent) error
}

func ConsumeApprovalApproved(
	ctx context.Context,
	reader MessageReader,
	handler ApprovalApprovedHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.approval_approved")
	log.Info("approval approved consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("approval approved consumer stopped")
				return
			}
			log.Error("fetch approval approved message failed", zap.Error(err))
			continue
		}

		var event events.ApprovalApprovedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode approval_approved event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := handleWithRetry(ctx, handler, event, log); err != nil {
			if isDuplicateDelivery(err) {
				log.Warn("approval already issued, skipping",
					zap.String("approval_id", event.ApprovalID),
					zap.String("request_id", event.RequestID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Info("approval approved consumer stopped before message was handled",
				zap.String("approval_id", event.ApprovalID),
				zap.Int64("offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit approval approved message failed", zap.Error(err))
			continue
		}

		log.Info("approved request issued",
			zap.String("approval_id", event.ApprovalID),
			zap.String("request_id", event.RequestID),
			zap.Int("items", len(event.Items)),
		)
	}
}

// handleWithRetry returns nil, a duplicate-delivery error, or the context
// error once ctx is done.
func handleWithRetry(
	ctx context.Context,
	handler ApprovalApprovedHandler,
	event events.ApprovalApprovedEvent,
	log *zap.Logger,
) error {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		err := handler.Handle(ctx, event)
		if err == nil || isDuplicateDelivery(err) {
			return err
		}

		log.Error("issue approved request failed, retrying",
			zap.String("approval_id", event.ApprovalID),
			zap.String("request_id", event.RequestID),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = min(delay*2, retryMaxDelay)
	}
}

func isDuplicateDelivery(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_issuance_run_approval"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_issuance_run_approval")
}
