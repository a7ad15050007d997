package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
)

func TestProducer_PublishEvent(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := NewProducerFrom(mockProducer, log.WithField("component", "kafka-producer-test"))

	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event PaymentEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.OrderNumber != "A1B2C3" {
			t.Errorf("unexpected order number %q", event.OrderNumber)
		}
		return nil
	})

	event := NewPaymentConfirmedEvent("A1B2C3", "pay-1", 4500)
	if err := producer.PublishEvent(TopicPaymentEvents, "A1B2C3", event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := NewProducerFrom(mockProducer, nil)

	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	if err := producer.PublishEvent(TopicPaymentEvents, "A1B2C3", NewPaymentConfirmedEvent("A1B2C3", "", 0)); err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_MarshalError(t *testing.T) {
	producer := NewProducerFrom(mocks.NewSyncProducer(t, nil), nil)
	if err := producer.PublishEvent(TopicPaymentEvents, "k", map[string]any{"bad": make(chan int)}); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestNewSyncProducerConfig(t *testing.T) {
	cfg := NewSyncProducerConfig("storefront-test")
	if cfg.ClientID != "storefront-test" {
		t.Fatalf("unexpected client id %q", cfg.ClientID)
	}
	if !cfg.Producer.Idempotent || cfg.Net.MaxOpenRequests != 1 {
		t.Fatal("producer must be idempotent with a single in-flight request")
	}
	if cfg.Producer.RequiredAcks != sarama.WaitForAll {
		t.Fatal("producer must wait for all replicas")
	}
}

func TestNewPaymentConfirmedEvent(t *testing.T) {
	event := NewPaymentConfirmedEvent("A1B2C3", "pay-1", 4500)

	if event.EventType != EventTypePaymentConfirmed {
		t.Errorf("expected event type %s, got %s", EventTypePaymentConfirmed, event.EventType)
	}
	if event.OrderNumber != "A1B2C3" || event.PaymentID != "pay-1" || event.AmountMinor != 4500 {
		t.Errorf("unexpected event fields: %+v", event)
	}
	if time.Since(event.Timestamp) > time.Second {
		t.Error("timestamp should be close to current time")
	}
}

func TestParsePaymentEvent(t *testing.T) {
	ok := &sarama.ConsumerMessage{Value: []byte(`{"event_type":"payment.confirmed","order_number":" N1 "}`)}
	event, err := ParsePaymentEvent(ok)
	if err != nil {
		t.Fatalf("ParsePaymentEvent failed: %v", err)
	}
	if event.OrderNumber != "N1" {
		t.Fatalf("order number should be trimmed, got %q", event.OrderNumber)
	}

	if _, err := ParsePaymentEvent(&sarama.ConsumerMessage{Value: []byte("{")}); err == nil {
		t.Fatal("expected unmarshal error")
	}
	if _, err := ParsePaymentEvent(&sarama.ConsumerMessage{Value: []byte(`{"event_type":"payment.confirmed"}`)}); err == nil {
		t.Fatal("expected missing order number error")
	}
}
