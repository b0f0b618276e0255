package events

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	outcomePublished = "published"
	outcomeFailed    = "failed"
	outcomeDiscarded = "discarded"
)

// Channel is the slice of *amqp091.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	IsClosed() bool
}

// ChannelOpener returns a fresh channel with the activity queue declared.
type ChannelOpener func() (Channel, error)

type activityPublisher struct {
	Channel Channel
	Open    ChannelOpener
	Queue   string
	Counter *prometheus.CounterVec
	Log     *zap.Logger

	mu sync.Mutex
}

// NewActivityPublisher opens a channel on conn and declares the activity
// queue. A nil connection yields a publisher that only counts and logs.
func NewActivityPublisher(conn *amqp091.Connection, queue string, counter *prometheus.CounterVec, logger *zap.Logger) (contracts.EventPublisher, error) {
	if conn == nil || queue == "" {
		return &noopPublisher{Counter: counter, Log: logger}, nil
	}

	return NewReopeningPublisher(func() (Channel, error) {
		channel, err := conn.Channel()
		if err != nil {
			return nil, err
		}
		if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			_ = channel.Close()
			return nil, err
		}
		return channel, nil
	}, queue, counter, logger)
}

// NewReopeningPublisher opens the first channel eagerly. Once the broker
// closes it, the next Publish asks open for a replacement.
func NewReopeningPublisher(open ChannelOpener, queue string, counter *prometheus.CounterVec, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := open()
	if err != nil {
		return nil, err
	}
	return &activityPublisher{
		Channel: channel,
		Open:    open,
		Queue:   queue,
		Counter: counter,
		Log:     logger,
	}, nil
}

func NewChannelPublisher(channel Channel, queue string, counter *prometheus.CounterVec, logger *zap.Logger) contracts.EventPublisher {
	return &activityPublisher{
		Channel: channel,
		Queue:   queue,
		Counter: counter,
		Log:     logger,
	}
}

// channel returns the current channel, replacing it first when it was
// closed and an opener is configured.
func (p *activityPublisher) channel(requestID string) (Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Channel != nil && !p.Channel.IsClosed() {
		return p.Channel, nil
	}
	if p.Open == nil {
		return p.Channel, nil
	}

	p.Log.Warn("activityPublisher.channel reopening closed channel",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
	)
	channel, err := p.Open()
	if err != nil {
		return nil, err
	}
	p.Channel = channel
	return channel, nil
}

func (p *activityPublisher) Publish(ctx context.Context, event *contracts.ActivityEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.Counter.WithLabelValues(event.Event, outcomeFailed).Inc()
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    requestID,
		Type:         event.Event,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	channel, err := p.channel(requestID)
	if err != nil {
		p.Counter.WithLabelValues(event.Event, outcomeFailed).Inc()
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	if err := channel.PublishWithContext(ctx, "", p.Queue, false, false, message); err != nil {
		p.Counter.WithLabelValues(event.Event, outcomeFailed).Inc()
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Counter.WithLabelValues(event.Event, outcomePublished).Inc()
	p.Log.Info("activityPublisher.Publish published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
	)
	return nil
}

type noopPublisher struct {
	Counter *prometheus.CounterVec
	Log     *zap.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, event *contracts.ActivityEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Counter.WithLabelValues(event.Event, outcomeDiscarded).Inc()
	p.Log.Debug("activityPublisher.Publish discarded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
	)
	return nil
}

// Emit publishes event and only logs a failure, so a broker outage never
// fails the action that produced the event.
func Emit(ctx context.Context, publisher contracts.EventPublisher, logger *zap.Logger, event *contracts.ActivityEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		logger.Warn("activity event not published",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.Error(err),
		)
	}
}
