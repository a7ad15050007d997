package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func orderEvent(number, eventType string) domain.OutboxMessage {
	return domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   number,
		EventType:     eventType,
		Payload:       []byte(`{"order_number":"` + number + `"}`),
	}
}

func TestOutboxRepository_PostgresLifecycle(t *testing.T) {
	store := integrationStore(t)
	repo := NewOutboxRepository(store)
	ctx := context.Background()

	first, err := repo.Enqueue(ctx, orderEvent("K7M2QX9P", domain.TimelineOrderCreated))
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())

	time.Sleep(5 * time.Millisecond)
	second, err := repo.Enqueue(ctx, orderEvent("K7M2QX9P", domain.TimelineStatusChanged))
	require.NoError(t, err)

	noPayload := orderEvent("P4RX8W2M", domain.TimelineOrderPurged)
	noPayload.Payload = nil
	third, err := repo.Enqueue(ctx, noPayload)
	require.NoError(t, err)

	pending, err := repo.PullPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, first.ID, pending[0].ID)
	require.Equal(t, second.ID, pending[1].ID)
	require.JSONEq(t, `{"order_number":"K7M2QX9P"}`, string(pending[0].Payload))
	require.WithinDuration(t, first.CreatedAt, pending[0].CreatedAt, time.Millisecond)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, stats.PendingCount)
	require.Zero(t, stats.FailedCount)
	require.WithinDuration(t, first.CreatedAt, stats.OldestPendingAt, time.Millisecond)

	require.NoError(t, repo.MarkSent(ctx, first.ID))
	require.NoError(t, repo.MarkFailed(ctx, second.ID))

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.PendingCount)
	require.Equal(t, 1, stats.FailedCount)

	pending, err = repo.PullPending(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, third.ID, pending[0].ID)
	require.Empty(t, pending[0].Payload)
}

func TestOutboxRepository_PostgresRejects(t *testing.T) {
	store := integrationStore(t)
	repo := NewOutboxRepository(store)
	ctx := context.Background()

	_, err := repo.Enqueue(ctx, domain.OutboxMessage{AggregateType: "order", EventType: domain.TimelineOrderCreated})
	require.ErrorIs(t, err, domain.ErrInvalidOutboxMessage)

	require.ErrorIs(t, repo.MarkSent(ctx, "missing-outbox"), domain.ErrOutboxMessageNotFound)
	require.ErrorIs(t, repo.MarkFailed(ctx, "missing-outbox"), domain.ErrOutboxMessageNotFound)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.OutboxStats{}, stats)
}
