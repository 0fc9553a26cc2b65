package issuance

import (
	"context"
	"fmt"
	"time"

	"go-invmis/internal/messaging/kafka"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultReconcileSchedule = "@every 15m"
	reconcileTimeout         = 30 * time.Second
	// StaleRunAge is how long a run may stay processing before it is
	// reported; the coordinator finishes a healthy run within seconds.
	StaleRunAge = 15 * time.Minute
)

// Backlog is the reconciliation snapshot logged by the worker.
type Backlog struct {
	OpenFailures  int64
	StaleRuns     int64
	PendingOutbox int
	FailedOutbox  int
	DeadOutbox    int
}

func (b Backlog) Empty() bool {
	return b.OpenFailures == 0 && b.StaleRuns == 0 && b.PendingOutbox == 0 && b.FailedOutbox == 0 && b.DeadOutbox == 0
}

type Reconciler struct {
	failures Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewReconciler(failures Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) *Reconciler {
	l := zap.L().Named("issuance.reconciler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("issuance.reconciler")
	}
	return &Reconciler{failures: failures, outbox: outbox, logger: l}
}

// Run takes one snapshot of the unresolved issuance failures, the runs
// stuck in processing, and the outbox events that are undelivered or
// dead-lettered.
func (r *Reconciler) Run(ctx context.Context) (Backlog, error) {
	var b Backlog
	var err error

	if b.OpenFailures, err = r.failures.CountOpenFailures(ctx); err != nil {
		return Backlog{}, fmt.Errorf("count open issuance failures: %w", err)
	}
	if b.StaleRuns, err = r.failures.CountStaleRuns(ctx, StaleRunAge); err != nil {
		return Backlog{}, fmt.Errorf("count stale issuance runs: %w", err)
	}
	if b.PendingOutbox, err = r.outbox.CountByStatus(ctx, kafka.OutboxStatusPending); err != nil {
		return Backlog{}, fmt.Errorf("count pending outbox events: %w", err)
	}
	if b.FailedOutbox, err = r.outbox.CountByStatus(ctx, kafka.OutboxStatusFailed); err != nil {
		return Backlog{}, fmt.Errorf("count failed outbox events: %w", err)
	}
	if b.DeadOutbox, err = r.outbox.CountByStatus(ctx, kafka.OutboxStatusDead); err != nil {
		return Backlog{}, fmt.Errorf("count dead outbox events: %w", err)
	}

	fields := []zap.Field{
		zap.Int64("open_failures", b.OpenFailures),
		zap.Int64("stale_runs", b.StaleRuns),
		zap.Int("pending_outbox", b.PendingOutbox),
		zap.Int("failed_outbox", b.FailedOutbox),
		zap.Int("dead_outbox", b.DeadOutbox),
	}
	if b.Empty() {
		r.logger.Info("issuance backlog clear", fields...)
	} else {
		r.logger.Warn("issuance backlog needs reconciliation", fields...)
	}
	return b, nil
}

// Schedule registers Run on c using a standard cron spec or an @every descriptor.
func (r *Reconciler) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	if spec == "" {
		spec = DefaultReconcileSchedule
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return 0, fmt.Errorf("invalid reconciliation schedule %q: %w", spec, err)
	}

	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
		defer cancel()
		if _, err := r.Run(ctx); err != nil {
			r.logger.Error("issuance reconciliation failed", zap.Error(err))
		}
	})
}
