// Package lifecycle меняет статусы заказов и ведёт журнал комментариев.
package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/events"
)

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 10 * time.Millisecond
)

// Service — административные операции над заказом. Переходы между статусами
// не ограничены порядком жизненного цикла.
type Service struct {
	orders   domain.OrderRepository
	timeline domain.TimelineRepository
	events   *events.Recorder
	metrics  *metrics.CheckoutMetrics
	logger   *log.Entry
	now      func() time.Time

	maxRetries int
	retryDelay time.Duration
}

// NewService создаёт сервис жизненного цикла. orders обычно обёрнут кэшем выборок.
// timeline нужен только для чтения истории и может быть nil.
func NewService(orders domain.OrderRepository, timeline domain.TimelineRepository, recorder *events.Recorder, m *metrics.CheckoutMetrics, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "lifecycle")
	}
	return &Service{
		orders:     orders,
		timeline:   timeline,
		events:     recorder,
		metrics:    m,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
}

func (s *Service) Get(ctx context.Context, number string) (domain.Order, error) {
	return s.orders.Get(ctx, number)
}

func (s *Service) List(ctx context.Context, query domain.OrderQuery) (domain.OrderPage, error) {
	return s.orders.List(ctx, query)
}

func (s *Service) Stats(ctx context.Context) (domain.OrderStats, error) {
	return s.orders.Stats(ctx)
}

// Timeline возвращает историю заказа в порядке возникновения событий.
func (s *Service) Timeline(ctx context.Context, number string) ([]domain.TimelineEvent, error) {
	if s.timeline == nil {
		return []domain.TimelineEvent{}, nil
	}
	return s.timeline.List(ctx, number)
}

// SetStatus переводит заказ в новый статус. Конфликт версий решается перечитыванием
// заказа и повтором с экспоненциальной задержкой.
func (s *Service) SetStatus(ctx context.Context, number string, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	delay := s.retryDelay
	for attempt := 1; ; attempt++ {
		order, err := s.orders.Get(ctx, number)
		if err != nil {
			return domain.Order{}, err
		}
		if order.Status == status {
			return order, nil
		}

		previous := order.Status
		if err := order.ApplyStatus(status, s.now()); err != nil {
			return domain.Order{}, err
		}

		err = s.orders.Save(ctx, order)
		if err == nil {
			order.Version++
			s.metrics.StatusChanged(string(status))
			s.events.Emit(ctx, order, domain.TimelineStatusChanged,
				fmt.Sprintf("%s -> %s", previous, status),
				map[string]any{"previous": string(previous)})
			s.logger.WithFields(log.Fields{
				"order_number": number,
				"from":         previous,
				"to":           status,
			}).Info("order status changed")
			return order, nil
		}

		if !domain.IsVersionConflict(err) || attempt >= s.maxRetries {
			s.logger.WithError(err).WithFields(log.Fields{
				"order_number": number,
				"attempt":      attempt,
			}).Error("failed to persist status")
			return domain.Order{}, err
		}

		s.logger.WithFields(log.Fields{
			"order_number": number,
			"attempt":      attempt,
		}).Warn("version conflict detected, retrying")

		select {
		case <-ctx.Done():
			return domain.Order{}, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// MarkPaid обрабатывает внешний сигнал об оплате.
func (s *Service) MarkPaid(ctx context.Context, number string) (domain.Order, error) {
	return s.SetStatus(ctx, number, domain.OrderStatusPaid)
}

// AddComment дописывает комментарий в журнал заказа.
func (s *Service) AddComment(ctx context.Context, number, author, text string) (domain.OrderComment, error) {
	author = strings.TrimSpace(author)
	text = strings.TrimSpace(text)
	if author == "" || text == "" {
		return domain.OrderComment{}, domain.ErrCommentRequired
	}

	comment := domain.OrderComment{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		CreatedAt: s.now(),
	}
	if err := s.orders.AppendComment(ctx, number, comment); err != nil {
		return domain.OrderComment{}, err
	}

	s.events.Emit(ctx, domain.Order{Number: number}, domain.TimelineCommentAdded, author, nil)
	return comment, nil
}

// Purge безвозвратно удаляет заказ. История событий сохраняется.
func (s *Service) Purge(ctx context.Context, number, reason string) error {
	order, err := s.orders.Get(ctx, number)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, number); err != nil {
		return err
	}
	s.events.Emit(ctx, order, domain.TimelineOrderPurged, reason, nil)
	s.logger.WithFields(log.Fields{
		"order_number": number,
		"reason":       reason,
	}).Warn("order purged")
	return nil
}
