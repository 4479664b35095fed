package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"madr/config"
	"madr/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const (
	headerEventType = "event_type"
	headerRequestID = "request_id"

	defaultBatchTimeout   = 50 * time.Millisecond
	defaultPublishTimeout = 2 * time.Second
	maxWriteAttempts      = 3
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic. Messages are keyed
// by aggregate id so every change to one entity lands on the same partition.
type kafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration // Upper bound of one Publish call, retries included.
	logger  *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to cfg.Topic on cfg.Brokers.
func NewKafkaPublisher(cfg *config.EventsConfig, logger *slog.Logger) service.EventPublisher {
	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = defaultBatchTimeout
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           batchTimeout,
		WriteTimeout:           timeout,
		MaxAttempts:            maxWriteAttempts,
		AllowAutoTopicCreation: true,
	}

	return newKafkaPublisher(writer, timeout, logger)
}

func newKafkaPublisher(writer messageWriter, timeout time.Duration, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		writer:  writer,
		timeout: timeout,
		logger:  logger,
	}
}

// Publish writes one event and waits for the broker acknowledgement, for at
// most the publish timeout.
func (p *kafkaPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := []kafka.Header{
		{Key: headerEventType, Value: []byte(event.Type)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafka.Header{Key: headerRequestID, Value: []byte(event.RequestID)})
	}

	msg := kafka.Message{
		Key:     []byte(event.AggregateID),
		Value:   data,
		Headers: headers,
		Time:    event.OccurredAt,
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		return errors.Wrapf(err, "publish %s event", event.Type)
	}

	p.logger.DebugContext(ctx, "[KafkaEvents] Event published",
		slog.String("type", string(event.Type)),
		slog.String("aggregate_id", event.AggregateID),
	)

	return nil
}

// Close flushes pending messages and closes the writer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
