package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/events"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func sample(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	if out.Counter != nil {
		return out.Counter.GetValue()
	}
	return out.Gauge.GetValue()
}

func newTestWorker(repo domain.OutboxRepository, publisher domain.OutboxPublisher, opts ...Option) *Worker {
	base := []Option{
		WithRegisterer(prometheus.NewRegistry()),
		WithRetryBaseDelay(0),
		WithMaxAttempts(3),
	}
	return NewWorker(repo, publisher, append(base, opts...)...)
}

func orderEvent(id, number, eventType, payload string) domain.OutboxMessage {
	return domain.OutboxMessage{
		ID:            id,
		AggregateType: events.AggregateOrder,
		AggregateID:   number,
		EventType:     eventType,
		Payload:       []byte(payload),
	}
}

func TestWorker_ProcessOnce_Sent(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{
		orderEvent("msg-1", "K7M2QX9P", domain.TimelineOrderCreated, `{"status":"created","units":2}`),
		orderEvent("msg-2", "K7M2QX9P", domain.TimelineStatusChanged, `{"status":"paid"}`),
	}}
	publisher := &stubPublisher{}

	report := newTestWorker(repo, publisher).ProcessOnce(context.Background())

	require.Equal(t, Report{Sent: 2}, report)
	require.Equal(t, []string{"msg-1", "msg-2"}, repo.sentIDs)
	require.Empty(t, repo.failedIDs)
	require.Equal(t, 2, publisher.calls())
}

func TestWorker_ProcessOnce_DeadLetterAfterRetries(t *testing.T) {
	t.Parallel()

	enqueued := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	msg := orderEvent("msg-3", "P4RX8W2M", domain.TimelineCheckoutRolledBack, `{"status":"released"}`)
	msg.CreatedAt = enqueued
	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{msg}}
	publisher := &stubPublisher{err: errors.New("broker unavailable")}
	dlq := &stubPublisher{}

	report := newTestWorker(repo, publisher, WithDLQPublisher(dlq)).ProcessOnce(context.Background())

	require.Equal(t, Report{DeadLettered: 1}, report)
	require.Equal(t, 3, publisher.calls())
	require.Empty(t, repo.sentIDs)
	require.Equal(t, []string{"msg-3"}, repo.failedIDs)
	require.Equal(t, 1, dlq.calls())

	out := dlq.last()
	require.Equal(t, "msg-3", out.ID)
	require.Equal(t, "P4RX8W2M", out.AggregateID)

	var letter DeadLetter
	require.NoError(t, json.Unmarshal(out.Payload, &letter))
	require.Equal(t, "msg-3", letter.OutboxID)
	require.Equal(t, domain.TimelineCheckoutRolledBack, letter.EventType)
	require.Equal(t, 3, letter.Attempts)
	require.Contains(t, letter.PublishError, "broker unavailable")
	require.JSONEq(t, `{"status":"released"}`, string(letter.Payload))
	require.NotNil(t, letter.EnqueuedAt)
	require.True(t, letter.EnqueuedAt.Equal(enqueued))
	require.False(t, letter.DLQPublishedAt.IsZero())
}

func TestWorker_ProcessOnce_DeadLetterWithoutDLQ(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{orderEvent("msg-4", "N1", domain.TimelineOrderCreated, "")}}
	worker := newTestWorker(repo, &stubPublisher{err: errors.New("down")}, WithMaxAttempts(1))

	require.Equal(t, Report{DeadLettered: 1}, worker.ProcessOnce(context.Background()))
	require.Equal(t, []string{"msg-4"}, repo.failedIDs)
	require.Equal(t, float64(1), sample(t, worker.metrics.attempts.WithLabelValues("failed")))
}

func TestWorker_ProcessOnce_SuccessAfterRetry(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{orderEvent("msg-5", "N2", domain.TimelineStatusChanged, "{}")}}
	publisher := &stubPublisher{sequenceErrors: []error{errors.New("attempt 1"), errors.New("attempt 2"), nil}}
	worker := newTestWorker(repo, publisher)

	require.Equal(t, Report{Sent: 1}, worker.ProcessOnce(context.Background()))
	require.Equal(t, 3, publisher.calls())
	require.Equal(t, float64(2), sample(t, worker.metrics.attempts.WithLabelValues("retry_error")))
	require.Empty(t, repo.failedIDs)
}

func TestWorker_ProcessOnce_CanceledLeavesPending(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{orderEvent("msg-6", "N3", domain.TimelineOrderCreated, "{}")}}
	publisher := &stubPublisher{err: errors.New("down")}
	worker := newTestWorker(repo, publisher, WithRetryBaseDelay(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	publisher.onCall = cancel

	require.Zero(t, worker.ProcessOnce(ctx))
	require.Equal(t, 1, publisher.calls())
	require.Empty(t, repo.failedIDs)
	require.Empty(t, repo.sentIDs)
}

func TestWorker_Backoff(t *testing.T) {
	t.Parallel()

	worker := newTestWorker(&stubOutboxRepo{}, &stubPublisher{}, WithRetryBaseDelay(time.Second))
	require.Equal(t, time.Second, worker.backoff(1))
	require.Equal(t, 2*time.Second, worker.backoff(2))
	require.Equal(t, 4*time.Second, worker.backoff(3))
	require.Equal(t, maxRetryDelay, worker.backoff(4))
	require.Equal(t, maxRetryDelay, worker.backoff(60))

	require.Zero(t, newTestWorker(&stubOutboxRepo{}, &stubPublisher{}).backoff(3))
	require.Equal(t, defaultRetryBaseDelay, NewWorker(nil, nil, WithRegisterer(prometheus.NewRegistry())).backoff(1))
}

func TestWorker_BacklogGauges(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{
		pending: []domain.OutboxMessage{orderEvent("msg-7", "N4", domain.TimelineOrderCreated, "{}")},
		failed:  2,
	}
	worker := newTestWorker(repo, &stubPublisher{err: errors.New("down")}, WithMaxAttempts(1))
	worker.now = func() time.Time { return repo.oldest().Add(90 * time.Second) }

	worker.observeBacklog(context.Background())
	require.Equal(t, float64(1), sample(t, worker.metrics.pending))
	require.Equal(t, float64(2), sample(t, worker.metrics.failed))
	require.InDelta(t, 90, sample(t, worker.metrics.oldestAge), 0.001)
}

func TestWorker_DeliversRecordedOrderEvents(t *testing.T) {
	t.Parallel()

	repo := memory.NewOutboxRepository()
	recorder := events.NewRecorder(repo, nil, nil, nil)
	order := domain.Order{Number: "K7M2P9Q4RX", Status: domain.OrderStatusCreated}

	recorder.Emit(context.Background(), order, domain.TimelineOrderCreated, "", map[string]any{"units": 2})
	recorder.Emit(context.Background(), order, domain.TimelineStatusChanged, "created -> paid", nil)

	publisher := &stubPublisher{}
	worker := NewWorker(repo, publisher, WithRegisterer(prometheus.NewRegistry()), WithRetryBaseDelay(0))

	require.Equal(t, Report{Sent: 2}, worker.ProcessOnce(context.Background()))
	require.Empty(t, repo.AllPending())
	require.Equal(t, "K7M2P9Q4RX", publisher.last().AggregateID)
	require.False(t, publisher.last().CreatedAt.IsZero())
	require.Equal(t, float64(2), sample(t, worker.metrics.attempts.WithLabelValues("sent")))
	require.Zero(t, sample(t, worker.metrics.pending))
}

func TestWorker_Run_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	worker := newTestWorker(&stubOutboxRepo{}, &stubPublisher{}, WithPollInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.Run(ctx)
	}()

	time.Sleep(15 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
}

func TestWorker_Run_DisabledWithoutPublisher(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		newTestWorker(&stubOutboxRepo{}, nil).Run(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker without publisher must return immediately")
	}
}

type stubOutboxRepo struct {
	pending   []domain.OutboxMessage
	failed    int
	sentIDs   []string
	failedIDs []string
}

func (s *stubOutboxRepo) oldest() time.Time {
	return time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
}

func (s *stubOutboxRepo) Enqueue(_ context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	return msg, nil
}

func (s *stubOutboxRepo) PullPending(_ context.Context, limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 || limit >= len(s.pending) {
		return append([]domain.OutboxMessage(nil), s.pending...), nil
	}
	return append([]domain.OutboxMessage(nil), s.pending[:limit]...), nil
}

func (s *stubOutboxRepo) Stats(_ context.Context) (domain.OutboxStats, error) {
	stats := domain.OutboxStats{PendingCount: len(s.pending), FailedCount: s.failed}
	if len(s.pending) > 0 {
		stats.OldestPendingAt = s.oldest()
	}
	return stats, nil
}

func (s *stubOutboxRepo) MarkSent(_ context.Context, id string) error {
	s.sentIDs = append(s.sentIDs, id)
	return nil
}

func (s *stubOutboxRepo) MarkFailed(_ context.Context, id string) error {
	s.failedIDs = append(s.failedIDs, id)
	return nil
}

type stubPublisher struct {
	mu             sync.Mutex
	err            error
	sequenceErrors []error
	callCount      int
	published      []domain.OutboxMessage
	onCall         func()
}

func (s *stubPublisher) Publish(_ context.Context, msg domain.OutboxMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.callCount++
	s.published = append(s.published, msg)
	if s.onCall != nil {
		s.onCall()
	}
	if len(s.sequenceErrors) > 0 {
		err := s.sequenceErrors[0]
		s.sequenceErrors = s.sequenceErrors[1:]
		return err
	}

	return s.err
}

func (s *stubPublisher) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

func (s *stubPublisher) last() domain.OutboxMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.published[len(s.published)-1]
}

var _ domain.OutboxRepository = (*stubOutboxRepo)(nil)
var _ domain.OutboxPublisher = (*stubPublisher)(nil)
