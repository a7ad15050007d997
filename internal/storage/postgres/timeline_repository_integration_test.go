package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestTimelineRepository_PostgresHistory(t *testing.T) {
	store := integrationStore(t)
	repo := NewTimelineRepository(store)
	ctx := context.Background()
	created := time.Now().UTC().Add(-time.Minute).Round(time.Microsecond)

	require.NoError(t, repo.Append(ctx, domain.TimelineEvent{
		OrderNumber: "HIST0001",
		Type:        domain.TimelineStatusChanged,
		Status:      domain.OrderStatusShipped,
		Reason:      "paid -> shipped",
	}))
	require.NoError(t, repo.Append(ctx, domain.TimelineEvent{
		OrderNumber: "HIST0001",
		Type:        domain.TimelineOrderCreated,
		Status:      domain.OrderStatusCreated,
		Occurred:    created,
	}))

	events, err := repo.List(ctx, "HIST0001")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, domain.TimelineOrderCreated, events[0].Type)
	require.True(t, events[0].Occurred.Equal(created))
	require.Equal(t, domain.OrderStatusShipped, events[1].Status)
	require.Equal(t, "paid -> shipped", events[1].Reason)
	require.Equal(t, "HIST0001", events[1].OrderNumber)
}

func TestTimelineRepository_PostgresValidationAndUnknownOrder(t *testing.T) {
	store := integrationStore(t)
	repo := NewTimelineRepository(store)
	ctx := context.Background()

	require.ErrorIs(t, repo.Append(ctx, domain.TimelineEvent{OrderNumber: "HIST0002"}), domain.ErrInvalidTimelineEvent)

	events, err := repo.List(ctx, "purged-order")
	require.NoError(t, err)
	require.Empty(t, events)
}
