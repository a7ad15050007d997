// Package outbox доставляет события заказов из transactional outbox в брокер.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const (
	defaultPollInterval   = time.Second
	defaultBatchSize      = 100
	defaultMaxAttempts    = 3
	defaultRetryBaseDelay = 50 * time.Millisecond
	maxRetryDelay         = 5 * time.Second
)

// Report — итог одного прохода по outbox.
type Report struct {
	Sent         int
	DeadLettered int
}

// DeadLetter — тело сообщения в DLQ-топике. Его разбирает утилита dlq-reprocess.
type DeadLetter struct {
	OutboxID       string          `json:"outbox_id"`
	AggregateType  string          `json:"aggregate_type"`
	AggregateID    string          `json:"aggregate_id"`
	EventType      string          `json:"event_type"`
	Payload        json.RawMessage `json:"payload"`
	PublishError   string          `json:"publish_error"`
	Attempts       int             `json:"attempts"`
	EnqueuedAt     *time.Time      `json:"enqueued_at,omitempty"`
	DLQPublishedAt time.Time       `json:"dlq_published_at"`
}

type workerMetrics struct {
	attempts  *prometheus.CounterVec
	pending   prometheus.Gauge
	failed    prometheus.Gauge
	oldestAge prometheus.Gauge
}

func newWorkerMetrics(registerer prometheus.Registerer) *workerMetrics {
	factory := promauto.With(registerer)
	return &workerMetrics{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_outbox_publish_attempts_total",
			Help: "Outbox publish attempts grouped by result.",
		}, []string{"result"}),
		pending: factory.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_outbox_pending_records",
			Help: "Order events waiting in the outbox.",
		}),
		failed: factory.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_outbox_failed_records",
			Help: "Order events that exhausted publish attempts.",
		}),
		oldestAge: factory.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_outbox_oldest_pending_age_seconds",
			Help: "Age in seconds of the oldest pending order event.",
		}),
	}
}

type settings struct {
	logger         *log.Entry
	dlq            domain.OutboxPublisher
	registerer     prometheus.Registerer
	pollInterval   time.Duration
	batchSize      int
	maxAttempts    int
	retryBaseDelay time.Duration
}

// Option настраивает Worker.
type Option func(*settings)

func WithLogger(logger *log.Entry) Option {
	return func(s *settings) { s.logger = logger }
}

// WithDLQPublisher задаёт получателя событий, исчерпавших попытки.
func WithDLQPublisher(publisher domain.OutboxPublisher) Option {
	return func(s *settings) { s.dlq = publisher }
}

func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(s *settings) { s.registerer = registerer }
}

func WithPollInterval(interval time.Duration) Option {
	return func(s *settings) { s.pollInterval = interval }
}

func WithBatchSize(size int) Option {
	return func(s *settings) { s.batchSize = size }
}

// WithMaxAttempts — число попыток публикации до перевода в failed.
func WithMaxAttempts(attempts int) Option {
	return func(s *settings) { s.maxAttempts = attempts }
}

// WithRetryBaseDelay — первая пауза между попытками; дальше она удваивается до 5s.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(s *settings) { s.retryBaseDelay = delay }
}

// Worker периодически вычитывает pending-события и публикует их.
type Worker struct {
	repo      domain.OutboxRepository
	publisher domain.OutboxPublisher
	cfg       settings
	metrics   *workerMetrics
	now       func() time.Time
}

func NewWorker(repo domain.OutboxRepository, publisher domain.OutboxPublisher, options ...Option) *Worker {
	cfg := settings{
		registerer:     prometheus.DefaultRegisterer,
		retryBaseDelay: defaultRetryBaseDelay,
	}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.WithField("component", "outbox-worker")
	}
	if cfg.pollInterval <= 0 {
		cfg.pollInterval = defaultPollInterval
	}
	if cfg.batchSize <= 0 {
		cfg.batchSize = defaultBatchSize
	}
	if cfg.maxAttempts <= 0 {
		cfg.maxAttempts = defaultMaxAttempts
	}
	if cfg.retryBaseDelay < 0 {
		cfg.retryBaseDelay = 0
	}

	return &Worker{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		metrics:   newWorkerMetrics(cfg.registerer),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run публикует события до отмены ctx.
func (w *Worker) Run(ctx context.Context) {
	if w.repo == nil || w.publisher == nil {
		w.cfg.logger.Warn("outbox worker is disabled: repo or publisher is nil")
		return
	}

	ticker := time.NewTicker(w.cfg.pollInterval)
	defer ticker.Stop()

	for {
		if report := w.ProcessOnce(ctx); report.Sent+report.DeadLettered > 0 {
			w.cfg.logger.WithFields(log.Fields{
				"sent":          report.Sent,
				"dead_lettered": report.DeadLettered,
			}).Debug("outbox batch delivered")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ProcessOnce публикует одну пачку pending-событий. При отмене ctx
// недоставленное событие остаётся pending.
func (w *Worker) ProcessOnce(ctx context.Context) Report {
	var report Report
	if ctx.Err() != nil {
		return report
	}
	defer w.observeBacklog(ctx)

	batch, err := w.repo.PullPending(ctx, w.cfg.batchSize)
	if err != nil {
		w.cfg.logger.WithError(err).Warn("failed to pull pending order events")
		return report
	}

	for _, msg := range batch {
		attempts, err := w.publish(ctx, msg)
		if ctx.Err() != nil {
			return report
		}

		fields := log.Fields{
			"outbox_id":    msg.ID,
			"event_type":   msg.EventType,
			"order_number": msg.AggregateID,
		}
		if err == nil {
			if markErr := w.repo.MarkSent(ctx, msg.ID); markErr != nil {
				w.cfg.logger.WithError(markErr).WithFields(fields).Warn("failed to mark order event as sent")
				continue
			}
			report.Sent++
			continue
		}

		w.cfg.logger.WithError(err).WithFields(fields).Error("order event publish failed after retries")
		w.metrics.attempts.WithLabelValues("failed").Inc()
		if dlqErr := w.deadLetter(ctx, msg, attempts, err); dlqErr != nil {
			w.cfg.logger.WithError(dlqErr).WithFields(fields).Warn("failed to publish order event to DLQ")
			w.metrics.attempts.WithLabelValues("dlq_failed").Inc()
		}
		if markErr := w.repo.MarkFailed(ctx, msg.ID); markErr != nil {
			w.cfg.logger.WithError(markErr).WithFields(fields).Warn("failed to mark order event as failed")
			continue
		}
		report.DeadLettered++
	}
	return report
}

// publish делает до maxAttempts попыток и возвращает число сделанных.
func (w *Worker) publish(ctx context.Context, msg domain.OutboxMessage) (int, error) {
	var lastErr error
	for attempt := 1; attempt <= w.cfg.maxAttempts; attempt++ {
		if attempt > 1 {
			if delay := w.backoff(attempt - 1); delay > 0 {
				timer := time.NewTimer(delay)
				select {
				case <-ctx.Done():
					timer.Stop()
					return attempt - 1, ctx.Err()
				case <-timer.C:
				}
			}
		}

		lastErr = w.publisher.Publish(ctx, msg)
		if lastErr == nil {
			w.metrics.attempts.WithLabelValues("sent").Inc()
			return attempt, nil
		}
		w.metrics.attempts.WithLabelValues("retry_error").Inc()
	}
	return w.cfg.maxAttempts, fmt.Errorf("%w after %d attempts: %w", domain.ErrOutboxPublish, w.cfg.maxAttempts, lastErr)
}

// backoff — пауза после n-й неудачной попытки: base, 2*base, 4*base... не больше maxRetryDelay.
func (w *Worker) backoff(n int) time.Duration {
	delay := w.cfg.retryBaseDelay
	if delay <= 0 {
		return 0
	}
	for i := 1; i < n; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	if delay > maxRetryDelay {
		return maxRetryDelay
	}
	return delay
}

func (w *Worker) deadLetter(ctx context.Context, msg domain.OutboxMessage, attempts int, publishErr error) error {
	if w.cfg.dlq == nil {
		return nil
	}

	payload := json.RawMessage(msg.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	letter := DeadLetter{
		OutboxID:       msg.ID,
		AggregateType:  msg.AggregateType,
		AggregateID:    msg.AggregateID,
		EventType:      msg.EventType,
		Payload:        payload,
		PublishError:   publishErr.Error(),
		Attempts:       attempts,
		DLQPublishedAt: w.now(),
	}
	if !msg.CreatedAt.IsZero() {
		enqueued := msg.CreatedAt.UTC()
		letter.EnqueuedAt = &enqueued
	}

	body, err := json.Marshal(letter)
	if err != nil {
		return fmt.Errorf("marshal dead letter: %w", err)
	}
	out := msg
	out.Payload = body
	if err := w.cfg.dlq.Publish(ctx, out); err != nil {
		return fmt.Errorf("publish dead letter: %w", err)
	}
	return nil
}

func (w *Worker) observeBacklog(ctx context.Context) {
	stats, err := w.repo.Stats(context.WithoutCancel(ctx))
	if err != nil {
		w.cfg.logger.WithError(err).Warn("failed to collect outbox backlog stats")
		return
	}

	w.metrics.pending.Set(float64(stats.PendingCount))
	w.metrics.failed.Set(float64(stats.FailedCount))
	age := 0.0
	if stats.PendingCount > 0 && !stats.OldestPendingAt.IsZero() {
		age = max(w.now().Sub(stats.OldestPendingAt).Seconds(), 0)
	}
	w.metrics.oldestAge.Set(age)
}
