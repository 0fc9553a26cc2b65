package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-invmis/internal/events"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedReader hands out queued messages then blocks until ctx is done.
type scriptedReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type handlerFunc func(ctx context.Context, event events.ApprovalApprovedEvent) error

func (f handlerFunc) Handle(ctx context.Context, event events.ApprovalApprovedEvent) error {
	return f(ctx, event)
}

func message(t *testing.T, approvalID string) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(events.ApprovalApprovedEvent{
		EventType:  events.ApprovalApprovedEventType,
		ApprovalID: approvalID,
		RequestID:  "REQ-" + approvalID,
	})
	require.NoError(t, err)
	return kafkago.Message{Key: []byte(approvalID), Value: body}
}

func fastRetry(t *testing.T) {
	base, ceiling := retryBaseDelay, retryMaxDelay
	retryBaseDelay, retryMaxDelay = time.Millisecond, 4*time.Millisecond
	t.Cleanup(func() { retryBaseDelay, retryMaxDelay = base, ceiling })
}

func run(reader *scriptedReader, h ApprovalApprovedHandler) {
	ctx, cancel := context.WithCancel(context.Background())
	reader.cancel = cancel
	ConsumeApprovalApproved(ctx, reader, h, zap.NewNop())
}

func TestConsumeApprovalApproved(t *testing.T) {
	t.Run("commits handled messages", func(t *testing.T) {
		var seen []string
		reader := &scriptedReader{msgs: []kafkago.Message{message(t, "a1"), message(t, "a2")}}

		run(reader, handlerFunc(func(ctx context.Context, e events.ApprovalApprovedEvent) error {
			seen = append(seen, e.ApprovalID)
			return nil
		}))

		assert.Equal(t, []string{"a1", "a2"}, seen)
		assert.Len(t, reader.committed, 2)
	})

	t.Run("transient error is retried before the next message", func(t *testing.T) {
		fastRetry(t)
		first, second := message(t, "a1"), message(t, "a2")
		first.Offset, second.Offset = 10, 11
		reader := &scriptedReader{msgs: []kafkago.Message{first, second}}

		var seen []string
		failures := 2
		run(reader, handlerFunc(func(ctx context.Context, e events.ApprovalApprovedEvent) error {
			seen = append(seen, e.ApprovalID)
			if e.ApprovalID == "a1" && failures > 0 {
				failures--
				return errors.New("connection reset")
			}
			return nil
		}))

		assert.Equal(t, []string{"a1", "a1", "a1", "a2"}, seen)
		require.Len(t, reader.committed, 2)
		assert.Equal(t, int64(10), reader.committed[0].Offset)
		assert.Equal(t, int64(11), reader.committed[1].Offset)
	})

	t.Run("shutdown during retry leaves message uncommitted", func(t *testing.T) {
		fastRetry(t)
		reader := &scriptedReader{msgs: []kafkago.Message{message(t, "a1"), message(t, "a2")}}

		var seen []string
		run(reader, handlerFunc(func(ctx context.Context, e events.ApprovalApprovedEvent) error {
			seen = append(seen, e.ApprovalID)
			if len(seen) == 3 {
				reader.cancel()
			}
			return errors.New("db down")
		}))

		assert.GreaterOrEqual(t, len(seen), 3)
		assert.NotContains(t, seen, "a2")
		assert.Empty(t, reader.committed)
	})

	t.Run("duplicate delivery is committed", func(t *testing.T) {
		reader := &scriptedReader{msgs: []kafkago.Message{message(t, "a1")}}

		run(reader, handlerFunc(func(ctx context.Context, e events.ApprovalApprovedEvent) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_issuance_run_approval"}
		}))

		assert.Len(t, reader.committed, 1)
	})

	t.Run("undecodable payload is committed and skipped", func(t *testing.T) {
		reader := &scriptedReader{msgs: []kafkago.Message{{Value: []byte("{")}}}

		run(reader, handlerFunc(func(ctx context.Context, e events.ApprovalApprovedEvent) error {
			t.Fatal("handler must not be called")
			return nil
		}))

		assert.Len(t, reader.committed, 1)
	})
}
