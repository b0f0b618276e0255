package events

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/metrics"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	queue    string
	messages []amqp091.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) IsClosed() bool {
	return f.closed
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.queue = key
	f.messages = append(f.messages, msg)
	return nil
}

func TestActivityPublisher_Publish(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("publishes json to the queue", func(t *testing.T) {
		m := metrics.NewMetrics()
		channel := &fakeChannel{}
		publisher := NewChannelPublisher(channel, "dentflow.activity", m.ActivityEvents, zap.NewNop())

		err := publisher.Publish(ctx, &contracts.ActivityEvent{Event: "clinic.toggled", ActorRole: "superadmin", ResourceID: "4"})
		require.NoError(t, err)

		require.Len(t, channel.messages, 1)
		assert.Equal(t, "dentflow.activity", channel.queue)
		assert.Equal(t, "req-1", channel.messages[0].MessageId)

		var decoded contracts.ActivityEvent
		require.NoError(t, json.Unmarshal(channel.messages[0].Body, &decoded))
		assert.Equal(t, "clinic.toggled", decoded.Event)
		assert.Equal(t, "4", decoded.ResourceID)
		assert.NotEmpty(t, decoded.OccurredAt)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.ActivityEvents.WithLabelValues("clinic.toggled", outcomePublished)))
	})

	t.Run("broker failure is reported", func(t *testing.T) {
		m := metrics.NewMetrics()
		publisher := NewChannelPublisher(&fakeChannel{err: errors.New("closed")}, "q", m.ActivityEvents, zap.NewNop())

		err := publisher.Publish(ctx, &contracts.ActivityEvent{Event: "plan.requested"})
		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCode(err))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.ActivityEvents.WithLabelValues("plan.requested", outcomeFailed)))
	})

	t.Run("nil connection discards", func(t *testing.T) {
		m := metrics.NewMetrics()
		publisher, err := NewActivityPublisher(nil, "q", m.ActivityEvents, zap.NewNop())
		require.NoError(t, err)

		require.NoError(t, publisher.Publish(ctx, &contracts.ActivityEvent{Event: "clinic.toggled"}))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.ActivityEvents.WithLabelValues("clinic.toggled", outcomeDiscarded)))
	})
}

func TestActivityPublisher_ReopensClosedChannel(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-2")

	t.Run("closed channel is replaced on the next publish", func(t *testing.T) {
		m := metrics.NewMetrics()
		first, second := &fakeChannel{}, &fakeChannel{}
		opened := []*fakeChannel{first, second}
		opens := 0
		open := func() (Channel, error) {
			channel := opened[opens]
			opens++
			return channel, nil
		}

		publisher, err := NewReopeningPublisher(open, "dentflow.activity", m.ActivityEvents, zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, publisher.Publish(ctx, &contracts.ActivityEvent{Event: "clinic.toggled"}))

		first.closed = true
		require.NoError(t, publisher.Publish(ctx, &contracts.ActivityEvent{Event: "clinic.toggled"}))

		assert.Equal(t, 2, opens)
		assert.Len(t, first.messages, 1)
		assert.Len(t, second.messages, 1)
		assert.Equal(t, float64(2), testutil.ToFloat64(m.ActivityEvents.WithLabelValues("clinic.toggled", outcomePublished)))
	})

	t.Run("failed reopen counts as a failed publish", func(t *testing.T) {
		m := metrics.NewMetrics()
		first := &fakeChannel{}
		opens := 0
		open := func() (Channel, error) {
			opens++
			if opens > 1 {
				return nil, errors.New("connection closed")
			}
			return first, nil
		}

		publisher, err := NewReopeningPublisher(open, "q", m.ActivityEvents, zap.NewNop())
		require.NoError(t, err)

		first.closed = true
		err = publisher.Publish(ctx, &contracts.ActivityEvent{Event: "plan.requested"})
		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCode(err))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.ActivityEvents.WithLabelValues("plan.requested", outcomeFailed)))

		first.closed = false
		require.NoError(t, publisher.Publish(ctx, &contracts.ActivityEvent{Event: "plan.requested"}))
		assert.Len(t, first.messages, 1)
	})

	t.Run("initial open failure is returned", func(t *testing.T) {
		m := metrics.NewMetrics()
		_, err := NewReopeningPublisher(func() (Channel, error) {
			return nil, errors.New("refused")
		}, "q", m.ActivityEvents, zap.NewNop())
		assert.Error(t, err)
	})
}
