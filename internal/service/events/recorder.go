// Package events записывает события заказа в outbox и историю.
package events

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// AggregateOrder — тип агрегата для сообщений outbox.
const AggregateOrder = "order"

// Recorder пишет событие в outbox и timeline. Ошибки записи логируются и не прерывают
// бизнес-операцию: состояние заказа уже сохранено.
type Recorder struct {
	outbox   domain.OutboxRepository
	timeline domain.TimelineRepository
	metrics  *metrics.CheckoutMetrics
	logger   *log.Entry
	now      func() time.Time
}

// NewRecorder создаёт Recorder. outbox и timeline могут быть nil.
func NewRecorder(outbox domain.OutboxRepository, timeline domain.TimelineRepository, m *metrics.CheckoutMetrics, logger *log.Entry) *Recorder {
	if logger == nil {
		logger = log.WithField("component", "order-events")
	}
	return &Recorder{
		outbox:   outbox,
		timeline: timeline,
		metrics:  m,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Emit записывает событие eventType по заказу. reason попадает в историю и payload.
func (r *Recorder) Emit(ctx context.Context, order domain.Order, eventType, reason string, payload map[string]any) {
	if r == nil {
		return
	}
	occurred := r.now()
	if payload == nil {
		payload = make(map[string]any)
	}
	payload["order_number"] = order.Number
	payload["status"] = string(order.Status)
	payload["ts"] = occurred.Format(time.RFC3339Nano)
	if reason != "" {
		payload["reason"] = reason
	}

	fields := log.Fields{
		"order_number": order.Number,
		"event":        eventType,
	}

	if r.outbox != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			r.logger.WithError(err).WithFields(fields).Error("marshal event failed")
		} else if _, err := r.outbox.Enqueue(ctx, domain.OutboxMessage{
			AggregateType: AggregateOrder,
			AggregateID:   order.Number,
			EventType:     eventType,
			Payload:       data,
		}); err != nil {
			r.logger.WithError(err).WithFields(fields).Error("enqueue event failed")
		} else {
			r.metrics.OutboxEvent()
		}
	}

	if r.timeline != nil {
		if err := r.timeline.Append(ctx, domain.TimelineEvent{
			OrderNumber: order.Number,
			Type:        eventType,
			Status:      order.Status,
			Reason:      reason,
			Occurred:    occurred,
		}); err != nil {
			r.logger.WithError(err).WithFields(fields).Warn("append timeline event failed")
		} else {
			r.metrics.TimelineEvent()
		}
	}
}
