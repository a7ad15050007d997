package kafka

import (
	"context"
	"errors"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// PaymentMarker переводит заказ в статус Paid.
type PaymentMarker interface {
	MarkPaid(ctx context.Context, number string) (domain.Order, error)
}

// NewPaymentConfirmedHandler возвращает обработчик TopicPaymentEvents.
// Неразборчивое сообщение и неизвестный заказ не исправятся повтором и уходят в DLQ сразу.
func NewPaymentConfirmedHandler(marker PaymentMarker, logger *log.Entry) MessageHandler {
	if logger == nil {
		logger = log.WithField("component", "payment-consumer")
	}
	return func(ctx context.Context, message *sarama.ConsumerMessage) error {
		event, err := ParsePaymentEvent(message)
		if err != nil {
			return Permanent(err)
		}
		if event.EventType != EventTypePaymentConfirmed {
			logger.WithField("event_type", event.EventType).Debug("skipping payment event")
			return nil
		}

		order, err := marker.MarkPaid(ctx, event.OrderNumber)
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				return Permanent(err)
			}
			return err
		}

		logger.WithFields(log.Fields{
			"order_number": order.Number,
			"payment_id":   event.PaymentID,
		}).Info("payment confirmed")
		return nil
	}
}
