// Package idempotency чистит просроченные ключи идемпотентности оформления.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

const (
	defaultCleanupInterval  = 10 * time.Minute
	defaultCleanupBatchSize = 500
	defaultMaxBatches       = 100
)

// ExpiredKeyDeleter — часть domain.IdempotencyRepository, нужная очистке.
type ExpiredKeyDeleter interface {
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error)
}

// Sweep — итог одного прохода очистки.
type Sweep struct {
	Deleted int
	Batches int
	// Truncated: проход упёрся в maxBatches, остаток уйдёт следующему тику.
	Truncated bool
}

type cleanupMetrics struct {
	runs     *prometheus.CounterVec
	deleted  prometheus.Counter
	lastRun  prometheus.Gauge
	duration prometheus.Histogram
}

func newCleanupMetrics(registerer prometheus.Registerer) *cleanupMetrics {
	factory := promauto.With(registerer)
	return &cleanupMetrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_idempotency_cleanup_runs_total",
			Help: "Idempotency cleanup runs grouped by result.",
		}, []string{"result"}),
		deleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_idempotency_cleanup_deleted_total",
			Help: "Expired checkout idempotency keys removed.",
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_idempotency_cleanup_last_deleted",
			Help: "Keys removed by the last cleanup run.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefront_idempotency_cleanup_duration_seconds",
			Help:    "Duration of one cleanup run.",
			Buckets: prometheus.ExponentialBuckets(0.005, 4, 7),
		}),
	}
}

type cleanupSettings struct {
	logger     *log.Entry
	interval   time.Duration
	batchSize  int
	maxBatches int
	registerer prometheus.Registerer
}

// CleanupOption настраивает CleanupWorker.
type CleanupOption func(*cleanupSettings)

func WithLogger(logger *log.Entry) CleanupOption {
	return func(s *cleanupSettings) { s.logger = logger }
}

func WithInterval(interval time.Duration) CleanupOption {
	return func(s *cleanupSettings) { s.interval = interval }
}

// WithBatchSize задаёт размер одной порции DELETE.
func WithBatchSize(batchSize int) CleanupOption {
	return func(s *cleanupSettings) { s.batchSize = batchSize }
}

// WithMaxBatches ограничивает число порций за один проход.
func WithMaxBatches(n int) CleanupOption {
	return func(s *cleanupSettings) { s.maxBatches = n }
}

func WithRegisterer(registerer prometheus.Registerer) CleanupOption {
	return func(s *cleanupSettings) { s.registerer = registerer }
}

// CleanupWorker периодически удаляет ключи с истёкшим TTL.
// Просроченный ключ занимается заново и без очистки: воркер только ограничивает рост таблицы.
type CleanupWorker struct {
	repo    ExpiredKeyDeleter
	cfg     cleanupSettings
	metrics *cleanupMetrics
	now     func() time.Time
}

func NewCleanupWorker(repo ExpiredKeyDeleter, options ...CleanupOption) *CleanupWorker {
	cfg := cleanupSettings{registerer: prometheus.DefaultRegisterer}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.WithField("component", "idempotency-cleanup-worker")
	}
	if cfg.interval <= 0 {
		cfg.interval = defaultCleanupInterval
	}
	if cfg.batchSize <= 0 {
		cfg.batchSize = defaultCleanupBatchSize
	}
	if cfg.maxBatches <= 0 {
		cfg.maxBatches = defaultMaxBatches
	}

	return &CleanupWorker{
		repo:    repo,
		cfg:     cfg,
		metrics: newCleanupMetrics(cfg.registerer),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Run чистит сразу при старте и далее по тикеру до отмены ctx.
func (w *CleanupWorker) Run(ctx context.Context) {
	if w.repo == nil {
		w.cfg.logger.Warn("idempotency cleanup worker is disabled: repo is nil")
		return
	}

	ticker := time.NewTicker(w.cfg.interval)
	defer ticker.Stop()

	for {
		w.runOnce(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *CleanupWorker) runOnce(ctx context.Context) {
	started := time.Now()
	sweep, err := w.Sweep(ctx, w.now())
	w.metrics.duration.Observe(time.Since(started).Seconds())

	switch {
	case errors.Is(err, context.Canceled):
		return
	case err != nil:
		w.metrics.runs.WithLabelValues("error").Inc()
		w.cfg.logger.WithError(err).WithField("deleted", sweep.Deleted).Warn("idempotency cleanup run failed")
		return
	}

	result := "ok"
	if sweep.Truncated {
		result = "truncated"
	}
	w.metrics.runs.WithLabelValues(result).Inc()
	w.metrics.lastRun.Set(float64(sweep.Deleted))
	if sweep.Deleted > 0 {
		w.cfg.logger.WithFields(log.Fields{
			"deleted":   sweep.Deleted,
			"batches":   sweep.Batches,
			"truncated": sweep.Truncated,
		}).Info("expired idempotency keys removed")
	}
}

// Sweep удаляет ключи с ttl <= before порциями, пока порция заполнена
// целиком и не исчерпан лимит порций.
func (w *CleanupWorker) Sweep(ctx context.Context, before time.Time) (Sweep, error) {
	if before.IsZero() {
		before = w.now()
	}

	var sweep Sweep
	for sweep.Batches < w.cfg.maxBatches {
		if err := ctx.Err(); err != nil {
			return sweep, err
		}

		deleted, err := w.repo.DeleteExpired(ctx, before, w.cfg.batchSize)
		if err != nil {
			return sweep, err
		}
		sweep.Batches++
		sweep.Deleted += deleted
		w.metrics.deleted.Add(float64(deleted))

		if deleted < w.cfg.batchSize {
			return sweep, nil
		}
	}
	sweep.Truncated = true
	return sweep, nil
}
