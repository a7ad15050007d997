package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeGroup struct {
	consume func(context.Context, []string, sarama.ConsumerGroupHandler) error
	errs    chan error
	closeFn func() error
}

func (g *fakeGroup) Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	if g.consume != nil {
		return g.consume(ctx, topics, handler)
	}
	return nil
}

func (g *fakeGroup) Errors() <-chan error { return g.errs }

func (g *fakeGroup) Close() error {
	if g.closeFn != nil {
		return g.closeFn()
	}
	if g.errs != nil {
		close(g.errs)
	}
	return nil
}

func (g *fakeGroup) Pause(map[string][]int32)  {}
func (g *fakeGroup) Resume(map[string][]int32) {}
func (g *fakeGroup) PauseAll()                 {}
func (g *fakeGroup) ResumeAll()                {}

type fakeSession struct {
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "storefront-1" }
func (s *fakeSession) GenerationID() int32                      { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context                 { return s.ctx }
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return TopicPaymentEvents }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func claimOf(messages ...*sarama.ConsumerMessage) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(messages))
	for _, msg := range messages {
		ch <- msg
	}
	close(ch)
	return &fakeClaim{messages: ch}
}

func paymentMessage(offset int64, headers ...*sarama.RecordHeader) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{
		Topic:   TopicPaymentEvents,
		Offset:  offset,
		Key:     []byte("K7M2QX9P"),
		Value:   []byte(`{"event_type":"payment.confirmed","order_number":"K7M2QX9P"}`),
		Headers: headers,
	}
}

func testConsumer(handler MessageHandler, opts ...ConsumerOption) *Consumer {
	opts = append([]ConsumerOption{WithRetryDelay(0), WithConsumerLogger(log.WithField("test", "consumer"))}, opts...)
	return newConsumer(&fakeGroup{}, []string{TopicPaymentEvents}, handler, opts...)
}

func TestNewConsumer_UnreachableBroker(t *testing.T) {
	_, err := NewConsumer([]string{"invalid-broker:9092"}, "storefront", []string{TopicPaymentEvents}, nil)
	require.Error(t, err)
}

func TestNewConsumer_Options(t *testing.T) {
	c := newConsumer(&fakeGroup{}, nil, nil, WithMaxRetries(0))
	require.Equal(t, 1, c.maxRetries)
	require.Equal(t, TopicDeadLetterQueue, c.dlqTopic)
	require.Equal(t, defaultRetryDelay, c.retryDelay)

	c = newConsumer(&fakeGroup{}, nil, nil, WithDLQ(nil, "payments.dlq"), WithDLQ(nil, ""), WithRetryDelay(time.Second))
	require.Equal(t, "payments.dlq", c.dlqTopic)
	require.Equal(t, time.Second, c.retryDelay)
}

func TestConsumer_StartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rounds atomic.Int32
	errs := make(chan error, 1)
	errs <- errors.New("rebalance in progress")
	group := &fakeGroup{
		errs: errs,
		consume: func(ctx context.Context, topics []string, _ sarama.ConsumerGroupHandler) error {
			if rounds.Add(1) == 2 {
				cancel()
			}
			return nil
		},
	}

	c := newConsumer(group, []string{TopicPaymentEvents}, nil)
	require.NoError(t, c.Start(ctx))
	<-ctx.Done()
	require.NoError(t, c.Stop())
	require.GreaterOrEqual(t, rounds.Load(), int32(2))
}

func TestConsumer_StopError(t *testing.T) {
	errs := make(chan error)
	c := newConsumer(&fakeGroup{errs: errs, closeFn: func() error {
		close(errs)
		return errors.New("close failed")
	}}, nil, nil)
	require.ErrorContains(t, c.Stop(), "close failed")
}

func TestConsumer_ConsumeClaimMarksHandledOnly(t *testing.T) {
	failing := map[int64]bool{2: true}
	c := testConsumer(func(_ context.Context, msg *sarama.ConsumerMessage) error {
		if failing[msg.Offset] {
			return errors.New("order service unavailable")
		}
		return nil
	}, WithMaxRetries(1))

	require.NoError(t, c.Setup(nil))
	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, c.ConsumeClaim(session, claimOf(paymentMessage(1), paymentMessage(2), paymentMessage(3))))
	require.NoError(t, c.Cleanup(nil))

	require.Equal(t, []int64{1, 3}, session.marked)
}

func TestConsumer_ConsumeClaimStopsOnSessionDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := testConsumer(func(context.Context, *sarama.ConsumerMessage) error { return nil })

	done := make(chan error, 1)
	go func() {
		done <- c.ConsumeClaim(&fakeSession{ctx: ctx}, &fakeClaim{messages: make(chan *sarama.ConsumerMessage)})
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ConsumeClaim did not stop after session cancellation")
	}
}

func TestConsumer_HandleMessageWithRetry(t *testing.T) {
	tests := []struct {
		name         string
		failures     int
		permanent    bool
		maxRetries   int
		retryHeader  string
		wantAttempts int
		wantErr      bool
	}{
		{name: "first attempt", maxRetries: 3, wantAttempts: 1},
		{name: "recovers on retry", failures: 2, maxRetries: 3, wantAttempts: 3},
		{name: "gives up without dlq", failures: 10, maxRetries: 2, wantAttempts: 2, wantErr: true},
		{name: "replayed message keeps earlier attempts", failures: 10, maxRetries: 3, retryHeader: "1", wantAttempts: 2, wantErr: true},
		{name: "exhausted replay gets one attempt", failures: 10, maxRetries: 3, retryHeader: "7", wantAttempts: 1, wantErr: true},
		{name: "broken retry header is ignored", failures: 10, maxRetries: 2, retryHeader: "two", wantAttempts: 2, wantErr: true},
		{name: "permanent error is not retried", failures: 10, permanent: true, maxRetries: 5, wantAttempts: 1, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			attempts := 0
			c := testConsumer(func(context.Context, *sarama.ConsumerMessage) error {
				attempts++
				if attempts > tc.failures {
					return nil
				}
				err := errors.New("order service unavailable")
				if tc.permanent {
					return Permanent(err)
				}
				return err
			}, WithMaxRetries(tc.maxRetries))

			msg := paymentMessage(1)
			if tc.retryHeader != "" {
				msg.Headers = []*sarama.RecordHeader{{Key: []byte(HeaderRetryCount), Value: []byte(tc.retryHeader)}}
			}

			err := c.handleMessageWithRetry(context.Background(), msg)
			require.Equal(t, tc.wantAttempts, attempts)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConsumer_RetryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := testConsumer(func(context.Context, *sarama.ConsumerMessage) error {
		cancel()
		return errors.New("order service unavailable")
	}, WithRetryDelay(time.Minute))

	require.ErrorIs(t, c.handleMessageWithRetry(ctx, paymentMessage(1)), context.Canceled)
}

func TestConsumer_DeadLettersWithHeaders(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		require.Equal(t, "payments.dlq", msg.Topic)

		headers := make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			headers[string(h.Key)] = string(h.Value)
		}
		require.Equal(t, TopicPaymentEvents, headers[HeaderOriginalTopic])
		require.Equal(t, "3", headers[HeaderRetryCount])
		require.Contains(t, headers[HeaderErrorMessage], "unknown order")
		require.NotEmpty(t, headers[HeaderFailedAt])

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var payload DLQPayload
		require.NoError(t, json.Unmarshal(value, &payload))
		require.Equal(t, int64(42), payload.OriginalOffset)
		require.Equal(t, "K7M2QX9P", payload.OriginalKey)
		require.Equal(t, 3, payload.RetryCount)
		return nil
	})

	attempts := 0
	c := testConsumer(func(context.Context, *sarama.ConsumerMessage) error {
		attempts++
		return errors.New("unknown order")
	}, WithDLQ(NewProducerFrom(mockProducer, nil), "payments.dlq"), WithMaxRetries(3))

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, c.ConsumeClaim(session, claimOf(paymentMessage(42))))
	require.Equal(t, 3, attempts)
	require.Equal(t, []int64{42}, session.marked)
	require.NoError(t, mockProducer.Close())
}

func TestConsumer_DeadLetterFailureKeepsOffset(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	c := testConsumer(func(context.Context, *sarama.ConsumerMessage) error {
		return Permanent(errors.New("malformed payment event"))
	}, WithDLQ(NewProducerFrom(mockProducer, nil), ""))

	err := c.handleMessageWithRetry(context.Background(), paymentMessage(7))
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	session := &fakeSession{ctx: context.Background()}
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	require.NoError(t, c.ConsumeClaim(session, claimOf(paymentMessage(7))))
	require.Empty(t, session.marked)
	require.NoError(t, mockProducer.Close())
}

func TestPermanent(t *testing.T) {
	require.NoError(t, Permanent(nil))

	cause := errors.New("bad json")
	err := Permanent(cause)
	require.True(t, IsPermanent(err))
	require.ErrorIs(t, err, cause)
	require.False(t, IsPermanent(cause))
}
