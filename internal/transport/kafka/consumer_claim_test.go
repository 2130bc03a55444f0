package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/service/urgent"
	testlog "bloodlink/internal/testutil"
)

type fakeSession struct {
	ctx context.Context

	mu     sync.Mutex
	marked int
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(*sarama.ConsumerMessage, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked++
}

func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "" }
func (s *fakeSession) GenerationID() int32                      { return 0 }

func (s *fakeSession) MarkedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marked
}

type fakeClaim struct {
	ch chan *sarama.ConsumerMessage
}

func (c fakeClaim) Topic() string              { return "t" }
func (c fakeClaim) Partition() int32           { return 0 }
func (c fakeClaim) InitialOffset() int64       { return 0 }
func (c fakeClaim) HighWaterMarkOffset() int64 { return 0 }
func (c fakeClaim) Messages() <-chan *sarama.ConsumerMessage {
	return c.ch
}

func makeClaim(values ...[]byte) fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(values))
	for _, v := range values {
		ch <- &sarama.ConsumerMessage{Value: v}
	}
	close(ch)
	return fakeClaim{ch: ch}
}

func eventJSON(t *testing.T, e EventDTO) []byte {
	t.Helper()
	b, err := json.Marshal(e)
	require.NoError(t, err)
	return b
}

func TestConsumeClaim_BadJSON_Skips(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, urgent.Event) error {
			t.Fatal("handler must not be called")
			return nil
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	err := h.ConsumeClaim(sess, makeClaim([]byte("{not json")))
	require.NoError(t, err)
	require.Equal(t, 1, sess.MarkedCount())
}

func TestConsumeClaim_MissingRecipientID_Skips(t *testing.T) {
	t.Parallel()

	c := &Consumer{
		logger: testlog.New().Logger(),
		handler: func(context.Context, urgent.Event) error {
			t.Fatal("handler must not be called")
			return nil
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	err := h.ConsumeClaim(sess, makeClaim(eventJSON(t, EventDTO{Urgency: "high"})))
	require.NoError(t, err)
	require.Equal(t, 1, sess.MarkedCount())
}

func TestConsumeClaim_HandlerSuccess_Marks(t *testing.T) {
	t.Parallel()

	var handled []urgent.Event
	c := &Consumer{
		logger: testlog.New().Logger(),
		handler: func(_ context.Context, e urgent.Event) error {
			handled = append(handled, e)
			return nil
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	err := h.ConsumeClaim(sess, makeClaim(
		eventJSON(t, EventDTO{RecipientID: 1, Urgency: "HIGH", Message: " need blood "}),
		eventJSON(t, EventDTO{RecipientID: 2}),
	))
	require.NoError(t, err)
	require.Equal(t, 2, sess.MarkedCount())
	require.Len(t, handled, 2)
	require.Equal(t, "high", handled[0].Urgency)
	require.Equal(t, "need blood", handled[0].Message)
}

func TestConsumeClaim_TransientError_Aborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	c := &Consumer{
		logger: testlog.New().Logger(),
		handler: func(context.Context, urgent.Event) error {
			return boom
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	err := h.ConsumeClaim(sess, makeClaim(eventJSON(t, EventDTO{RecipientID: 1})))
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, sess.MarkedCount())
}

func TestConsumeClaim_PermanentError_Skips(t *testing.T) {
	t.Parallel()

	c := &Consumer{
		logger: testlog.New().Logger(),
		handler: func(context.Context, urgent.Event) error {
			return Permanent(errors.New("invalid alert"))
		},
	}
	h := &groupHandler{c: c}
	sess := &fakeSession{ctx: context.Background()}

	err := h.ConsumeClaim(sess, makeClaim(eventJSON(t, EventDTO{RecipientID: 1})))
	require.NoError(t, err)
	require.Equal(t, 1, sess.MarkedCount())
}

func TestNewConsumer_DisabledWithoutBrokers(t *testing.T) {
	t.Parallel()

	c, err := NewConsumer(nil, "g", "t", testlog.New().Logger(), nil)
	require.NoError(t, err)
	require.Nil(t, c)

	require.NoError(t, c.Run(context.Background()))
	require.NoError(t, c.Close())
}
