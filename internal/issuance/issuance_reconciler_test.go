package issuance_test

import (
	"context"
	"errors"
	"testing"

	"go-invmis/internal/issuance"
	issuanceMock "go-invmis/internal/issuance/mock"
	"go-invmis/internal/messaging/kafka"
	kafkaMock "go-invmis/internal/messaging/kafka/mock"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconciler_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("reports the backlog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := issuanceMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		r := issuance.NewReconciler(repo, outbox)

		repo.EXPECT().CountOpenFailures(ctx).Return(int64(3), nil)
		repo.EXPECT().CountStaleRuns(ctx, issuance.StaleRunAge).Return(int64(0), nil)
		outbox.EXPECT().CountByStatus(ctx, kafka.OutboxStatusPending).Return(1, nil)
		outbox.EXPECT().CountByStatus(ctx, kafka.OutboxStatusFailed).Return(0, nil)
		outbox.EXPECT().CountByStatus(ctx, kafka.OutboxStatusDead).Return(2, nil)

		got, err := r.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, issuance.Backlog{OpenFailures: 3, PendingOutbox: 1, DeadOutbox: 2}, got)
		assert.False(t, got.Empty())
	})

	t.Run("run stuck in processing is backlog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := issuanceMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		r := issuance.NewReconciler(repo, outbox)

		repo.EXPECT().CountOpenFailures(ctx).Return(int64(0), nil)
		repo.EXPECT().CountStaleRuns(ctx, issuance.StaleRunAge).Return(int64(1), nil)
		outbox.EXPECT().CountByStatus(ctx, gomock.Any()).Return(0, nil).Times(3)

		got, err := r.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, issuance.Backlog{StaleRuns: 1}, got)
		assert.False(t, got.Empty())
	})

	t.Run("stops on count failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := issuanceMock.NewMockRepository(ctrl)
		r := issuance.NewReconciler(repo, kafkaMock.NewMockOutboxRepository(ctrl))

		repo.EXPECT().CountOpenFailures(ctx).Return(int64(0), errors.New("db down"))

		_, err := r.Run(ctx)

		assert.ErrorContains(t, err, "count open issuance failures")
	})
}

func TestReconciler_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := issuance.NewReconciler(issuanceMock.NewMockRepository(ctrl), kafkaMock.NewMockOutboxRepository(ctrl))
	c := cron.New()

	t.Run("default schedule", func(t *testing.T) {
		id, err := r.Schedule(c, "")

		require.NoError(t, err)
		assert.NotZero(t, id)
		assert.Len(t, c.Entries(), 1)
	})

	t.Run("rejects a bad spec", func(t *testing.T) {
		_, err := r.Schedule(c, "every now and then")

		assert.ErrorContains(t, err, "invalid reconciliation schedule")
	})
}
