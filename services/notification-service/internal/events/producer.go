package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/model"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher publishes notification lifecycle events
type Publisher interface {
	Publish(ctx context.Context, event model.NotificationEvent) error
	Close() error
}

// ProducerConfig holds settings for the Kafka producer
type ProducerConfig struct {
	Brokers       []string
	Topic         string
	ClientID      string
	MaxRetries    int
	RetryInterval time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer publishes lifecycle events to a Kafka topic
type KafkaProducer struct {
	writer        messageWriter
	topic         string
	maxRetries    int
	retryInterval time.Duration
	logger        *zap.Logger
}

// NewKafkaProducer creates a new Kafka producer
func NewKafkaProducer(cfg ProducerConfig, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		Transport: &kafka.Transport{
			ClientID: cfg.ClientID,
		},
	}

	return newKafkaProducer(writer, cfg, logger)
}

func newKafkaProducer(writer messageWriter, cfg ProducerConfig, logger *zap.Logger) *KafkaProducer {
	return &KafkaProducer{
		writer:        writer,
		topic:         cfg.Topic,
		maxRetries:    cfg.MaxRetries,
		retryInterval: cfg.RetryInterval,
		logger:        logger,
	}
}

// Publish sends an event, retrying transient write failures with exponential backoff
func (p *KafkaProducer) Publish(ctx context.Context, event model.NotificationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event",
			zap.String("topic", p.topic),
			zap.Error(err))
		return err
	}

	// events about one notification share a partition so consumers see them in order
	key := string(event.Type)
	if event.NotificationID != 0 {
		key = strconv.Itoa(event.NotificationID)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}

	policy := backoff.NewExponentialBackOff()
	if p.retryInterval > 0 {
		policy.InitialInterval = p.retryInterval
	}
	retry := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(p.maxRetries)), ctx)

	attempt := 0
	err = backoff.Retry(func() error {
		attempt++
		return p.writer.WriteMessages(ctx, msg)
	}, retry)
	if err != nil {
		p.logger.Error("Failed to publish event",
			zap.String("topic", p.topic),
			zap.String("event_type", string(event.Type)),
			zap.Int("attempts", attempt),
			zap.Error(err))
		return err
	}

	p.logger.Debug("Event published",
		zap.String("topic", p.topic),
		zap.String("event_type", string(event.Type)),
		zap.String("key", key))

	return nil
}

// Close closes the underlying Kafka writer
func (p *KafkaProducer) Close() error {
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer",
			zap.String("topic", p.topic),
			zap.Error(err))
		return err
	}
	return nil
}

// NopPublisher drops every event. It is used when Kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.NotificationEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
