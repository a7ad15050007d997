package kafka

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

// EventType — тип события во внешнем топике.
type EventType string

// EventTypePaymentConfirmed — платёжный шлюз подтвердил оплату заказа.
const EventTypePaymentConfirmed EventType = "payment.confirmed"

const (
	// TopicOrderEvents — события заказов из transactional outbox.
	TopicOrderEvents = "storefront.order.events"
	// TopicPaymentEvents — сигналы об оплате от платёжного шлюза.
	TopicPaymentEvents   = "storefront.payment.events"
	TopicDeadLetterQueue = "storefront.dlq"
)

// Kafka headers для retry логики и маршрутизации событий заказа.
const (
	HeaderEventType     = "x-event-type"
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
)

// OutboxEnvelope — формат сообщения, которое outbox публикует в TopicOrderEvents.
type OutboxEnvelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    *time.Time      `json:"occurred_at,omitempty"`
	PublishedAt   time.Time       `json:"published_at"`
}

// PaymentEvent — сообщение платёжного шлюза.
type PaymentEvent struct {
	EventType   EventType      `json:"event_type"`
	OrderNumber string         `json:"order_number"`
	PaymentID   string         `json:"payment_id,omitempty"`
	AmountMinor int64          `json:"amount_minor,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// NewPaymentConfirmedEvent создаёт сигнал об оплате заказа.
func NewPaymentConfirmedEvent(orderNumber, paymentID string, amountMinor int64) *PaymentEvent {
	return &PaymentEvent{
		EventType:   EventTypePaymentConfirmed,
		OrderNumber: orderNumber,
		PaymentID:   paymentID,
		AmountMinor: amountMinor,
		Timestamp:   time.Now().UTC(),
	}
}

// ParsePaymentEvent разбирает PaymentEvent и проверяет обязательные поля.
func ParsePaymentEvent(message *sarama.ConsumerMessage) (*PaymentEvent, error) {
	var event PaymentEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment event: %w", err)
	}
	event.OrderNumber = strings.TrimSpace(event.OrderNumber)
	if event.OrderNumber == "" {
		return nil, fmt.Errorf("payment event without order number")
	}
	return &event, nil
}
