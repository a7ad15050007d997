package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func TestRecorder_EmitWritesOutboxAndTimeline(t *testing.T) {
	ctx := context.Background()
	outbox := memory.NewOutboxRepository()
	timeline := memory.NewTimelineRepository()
	rec := NewRecorder(outbox, timeline, nil, nil)

	order := domain.Order{Number: "N1", Status: domain.OrderStatusPaid}
	rec.Emit(ctx, order, domain.TimelineStatusChanged, "created -> paid", map[string]any{"previous": "created"})

	pending, err := outbox.PullPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, AggregateOrder, pending[0].AggregateType)
	require.Equal(t, "N1", pending[0].AggregateID)
	require.Equal(t, domain.TimelineStatusChanged, pending[0].EventType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(pending[0].Payload, &payload))
	require.Equal(t, "N1", payload["order_number"])
	require.Equal(t, "paid", payload["status"])
	require.Equal(t, "created", payload["previous"])
	require.Equal(t, "created -> paid", payload["reason"])

	events, err := timeline.List(ctx, "N1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "created -> paid", events[0].Reason)
	require.Equal(t, domain.OrderStatusPaid, events[0].Status)
}

func TestRecorder_NilSafe(t *testing.T) {
	var rec *Recorder
	rec.Emit(context.Background(), domain.Order{Number: "N"}, domain.TimelineOrderCreated, "", nil)

	NewRecorder(nil, nil, nil, nil).Emit(context.Background(), domain.Order{Number: "N"}, domain.TimelineOrderCreated, "", nil)
}
