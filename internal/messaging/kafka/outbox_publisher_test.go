package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestOutboxPublisher_PublishEnvelope(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	published := created.Add(time.Second)

	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		require.Equal(t, TopicOrderEvents, msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		require.Equal(t, "K7M2QX9P", string(key))

		require.Len(t, msg.Headers, 1)
		require.Equal(t, HeaderEventType, string(msg.Headers[0].Key))
		require.Equal(t, domain.TimelineStatusChanged, string(msg.Headers[0].Value))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var envelope OutboxEnvelope
		require.NoError(t, json.Unmarshal(value, &envelope))
		require.Equal(t, "outbox-1", envelope.ID)
		require.Equal(t, domain.TimelineStatusChanged, envelope.EventType)
		require.JSONEq(t, `{"status":"paid"}`, string(envelope.Payload))
		require.NotNil(t, envelope.OccurredAt)
		require.True(t, envelope.OccurredAt.Equal(created))
		require.True(t, envelope.PublishedAt.Equal(published))
		return nil
	})

	publisher := NewOutboxPublisher(NewProducerFrom(mockProducer, nil), "")
	publisher.now = func() time.Time { return published }
	require.Equal(t, TopicOrderEvents, publisher.Topic())

	err := publisher.Publish(context.Background(), domain.OutboxMessage{
		ID:            "outbox-1",
		AggregateType: "order",
		AggregateID:   "K7M2QX9P",
		EventType:     domain.TimelineStatusChanged,
		Payload:       []byte(`{"status":"paid"}`),
		CreatedAt:     created,
	})
	require.NoError(t, err)
	require.NoError(t, mockProducer.Close())
}

func TestOutboxPublisher_EmptyPayloadAndKeyFallback(t *testing.T) {
	t.Parallel()

	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		require.Equal(t, "outbox-2", string(key))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var envelope OutboxEnvelope
		require.NoError(t, json.Unmarshal(value, &envelope))
		require.JSONEq(t, `{}`, string(envelope.Payload))
		require.Nil(t, envelope.OccurredAt)
		return nil
	})

	publisher := NewOutboxPublisher(NewProducerFrom(mockProducer, nil), TopicDeadLetterQueue)
	require.NoError(t, publisher.Publish(context.Background(), domain.OutboxMessage{
		ID:        "outbox-2",
		EventType: domain.TimelineOrderPurged,
	}))
	require.NoError(t, mockProducer.Close())
}

func TestOutboxPublisher_PublishProducerError(t *testing.T) {
	t.Parallel()

	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := NewOutboxPublisher(NewProducerFrom(mockProducer, nil), TopicOrderEvents)
	err := publisher.Publish(context.Background(), domain.OutboxMessage{
		ID:          "outbox-3",
		AggregateID: "P4RX8W2M",
		EventType:   domain.TimelineOrderCreated,
	})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, mockProducer.Close())
}

func TestOutboxPublisher_Guards(t *testing.T) {
	t.Parallel()

	mockProducer := mocks.NewSyncProducer(t, nil)
	publisher := NewOutboxPublisher(NewProducerFrom(mockProducer, nil), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, publisher.Publish(ctx, domain.OutboxMessage{ID: "outbox-4"}), context.Canceled)
	require.NoError(t, mockProducer.Close())

	var nilPublisher *OutboxTopicPublisher
	require.ErrorIs(t, nilPublisher.Publish(context.Background(), domain.OutboxMessage{}), errPublisherNotInitialized)
	require.ErrorIs(t, NewOutboxPublisher(nil, "").Publish(context.Background(), domain.OutboxMessage{}), errPublisherNotInitialized)
}
