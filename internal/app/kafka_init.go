package app

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
)

// kafkaRuntime — продюсер outbox и потребитель платёжных событий.
type kafkaRuntime struct {
	producer  *kafka.Producer
	publisher domain.OutboxPublisher
	dlq       domain.OutboxPublisher
	consumer  *kafka.Consumer
}

// initKafka подключается к брокерам из cfg. Без брокеров возвращает nil, nil.
// Ошибка потребителя не мешает публикации: сервис продолжает работу без него.
func initKafka(cfg Config, marker kafka.PaymentMarker, logger *log.Entry) (*kafkaRuntime, error) {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(brokers, cfg.KafkaClientID)
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		return nil, err
	}
	orders := kafka.NewOutboxPublisher(producer, cfg.KafkaOrderTopic)
	dlq := kafka.NewOutboxPublisher(producer, cfg.KafkaDLQTopic)
	logger.WithFields(log.Fields{
		"brokers":     brokers,
		"order_topic": orders.Topic(),
		"dlq_topic":   dlq.Topic(),
	}).Info("kafka producer initialized")

	rt := &kafkaRuntime{
		producer:  producer,
		publisher: orders,
		dlq:       dlq,
	}

	if marker != nil && cfg.KafkaPaymentTopic != "" {
		consumer, err := kafka.NewConsumer(
			brokers,
			cfg.KafkaConsumerGroup,
			[]string{cfg.KafkaPaymentTopic},
			kafka.NewPaymentConfirmedHandler(marker, logger.WithField("component", "payment-handler")),
			kafka.WithDLQ(producer, cfg.KafkaDLQTopic),
			kafka.WithConsumerLogger(logger.WithField("component", "kafka-consumer")),
		)
		if err != nil {
			logger.WithError(err).Warn("failed to create payment consumer, orders will not be marked paid from kafka")
		} else {
			rt.consumer = consumer
		}
	}
	return rt, nil
}

// kafkaPublisher возвращает nil-интерфейс, если Kafka выключена: outbox-воркер тогда не стартует.
func kafkaPublisher(rt *kafkaRuntime) domain.OutboxPublisher {
	if rt == nil {
		return nil
	}
	return rt.publisher
}

// start запускает потребителя, если он создан.
func (rt *kafkaRuntime) start(ctx context.Context, logger *log.Entry) {
	if rt == nil || rt.consumer == nil {
		return
	}
	if err := rt.consumer.Start(ctx); err != nil {
		logger.WithError(err).Warn("failed to start payment consumer")
	}
}

// closeKafka останавливает потребителя и закрывает продюсер.
func closeKafka(rt *kafkaRuntime, logger *log.Entry) {
	if rt == nil {
		return
	}
	if rt.consumer != nil {
		if err := rt.consumer.Stop(); err != nil {
			logger.WithError(err).Warn("failed to stop kafka consumer")
		}
	}
	if rt.producer == nil {
		return
	}
	if err := rt.producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}
