// Package reconcile доводит до конца оформления, прерванные между сохранением
// заказа и подтверждением списания.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

const (
	defaultInterval    = time.Minute
	defaultGracePeriod = 5 * time.Minute
	defaultBatchSize   = 100

	reconcileReason = "stale pending checkout"
)

// Compensator откатывает оформление заказа; повторный вызов безопасен.
type Compensator interface {
	Compensate(ctx context.Context, number, reason string) error
}

// Options задаёт параметры воркера сверки.
type Options struct {
	Logger      *log.Entry
	Metrics     *metrics.CheckoutMetrics
	Interval    time.Duration
	GracePeriod time.Duration
	BatchSize   int
}

// Option настраивает Worker.
type Option func(*Options)

func WithLogger(logger *log.Entry) Option {
	return func(o *Options) { o.Logger = logger }
}

func WithMetrics(m *metrics.CheckoutMetrics) Option {
	return func(o *Options) { o.Metrics = m }
}

func WithInterval(interval time.Duration) Option {
	return func(o *Options) { o.Interval = interval }
}

// WithGracePeriod задаёт возраст, после которого pending-заказ считается брошенным.
// Должен быть больше таймаута оформления.
func WithGracePeriod(grace time.Duration) Option {
	return func(o *Options) { o.GracePeriod = grace }
}

func WithBatchSize(size int) Option {
	return func(o *Options) { o.BatchSize = size }
}

// Worker периодически находит заказы с stockState=pending старше grace period
// и откатывает их.
type Worker struct {
	orders      domain.OrderRepository
	compensator Compensator
	metrics     *metrics.CheckoutMetrics
	logger      *log.Entry
	interval    time.Duration
	grace       time.Duration
	batchSize   int
	now         func() time.Time
}

func NewWorker(orders domain.OrderRepository, compensator Compensator, options ...Option) *Worker {
	opts := Options{
		Interval:    defaultInterval,
		GracePeriod: defaultGracePeriod,
		BatchSize:   defaultBatchSize,
	}
	for _, option := range options {
		option(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = log.WithField("component", "reconcile-worker")
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.GracePeriod <= 0 {
		opts.GracePeriod = defaultGracePeriod
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	return &Worker{
		orders:      orders,
		compensator: compensator,
		metrics:     opts.Metrics,
		logger:      opts.Logger,
		interval:    opts.Interval,
		grace:       opts.GracePeriod,
		batchSize:   opts.BatchSize,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Run запускает сверку по таймеру до отмены ctx.
func (w *Worker) Run(ctx context.Context) {
	if w.orders == nil || w.compensator == nil {
		w.logger.Warn("reconcile worker is disabled: dependencies are nil")
		return
	}

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	n, err := w.ReconcileOnce(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		w.logger.WithError(err).Warn("reconcile run finished with errors")
	}
	if n > 0 {
		w.logger.WithField("orders", n).Info("stale checkouts reconciled")
	}
}

// ReconcileOnce обрабатывает одну порцию и возвращает число откатанных заказов.
// Ошибка по одному заказу не останавливает обработку остальных.
func (w *Worker) ReconcileOnce(ctx context.Context) (int, error) {
	stale, err := w.orders.ListPendingStock(ctx, w.now().Add(-w.grace), w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending orders: %w", err)
	}

	var (
		done int
		errs []error
	)
	for _, order := range stale {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if err := w.compensator.Compensate(ctx, order.Number, reconcileReason); err != nil {
			w.logger.WithError(err).WithField("order_number", order.Number).Error("failed to reconcile order")
			errs = append(errs, fmt.Errorf("order %s: %w", order.Number, err))
			continue
		}
		done++
		w.metrics.Reconciled()
	}
	return done, errors.Join(errs...)
}
