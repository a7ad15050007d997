package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type stubMarker struct {
	numbers []string
	err     error
}

func (s *stubMarker) MarkPaid(_ context.Context, number string) (domain.Order, error) {
	if s.err != nil {
		return domain.Order{}, s.err
	}
	s.numbers = append(s.numbers, number)
	return domain.Order{Number: number, Status: domain.OrderStatusPaid}, nil
}

func TestPaymentConfirmedHandler(t *testing.T) {
	ctx := context.Background()
	confirmed := &sarama.ConsumerMessage{Value: []byte(`{"event_type":"payment.confirmed","order_number":"N1","payment_id":"p-1"}`)}

	t.Run("marks order paid", func(t *testing.T) {
		marker := &stubMarker{}
		if err := NewPaymentConfirmedHandler(marker, nil)(ctx, confirmed); err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if len(marker.numbers) != 1 || marker.numbers[0] != "N1" {
			t.Fatalf("unexpected marked orders: %v", marker.numbers)
		}
	})

	t.Run("skips other events", func(t *testing.T) {
		marker := &stubMarker{}
		msg := &sarama.ConsumerMessage{Value: []byte(`{"event_type":"payment.refunded","order_number":"N1"}`)}
		if err := NewPaymentConfirmedHandler(marker, nil)(ctx, msg); err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if len(marker.numbers) != 0 {
			t.Fatal("non-confirmation events must be ignored")
		}
	})

	t.Run("garbage is permanent", func(t *testing.T) {
		err := NewPaymentConfirmedHandler(&stubMarker{}, nil)(ctx, &sarama.ConsumerMessage{Value: []byte("{")})
		if !IsPermanent(err) {
			t.Fatalf("expected permanent error, got %v", err)
		}
	})

	t.Run("unknown order is permanent", func(t *testing.T) {
		err := NewPaymentConfirmedHandler(&stubMarker{err: domain.ErrOrderNotFound}, nil)(ctx, confirmed)
		if !IsPermanent(err) || !errors.Is(err, domain.ErrOrderNotFound) {
			t.Fatalf("expected permanent not found, got %v", err)
		}
	})

	t.Run("storage failure is retryable", func(t *testing.T) {
		err := NewPaymentConfirmedHandler(&stubMarker{err: errors.New("db down")}, nil)(ctx, confirmed)
		if err == nil || IsPermanent(err) {
			t.Fatalf("expected retryable error, got %v", err)
		}
	})
}
