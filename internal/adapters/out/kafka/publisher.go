// Package kafka publishes relayed outbox events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tracking/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

var _ ports.EventPublisher = &EventPublisher{}

// Envelope is the message value written for every event.
type Envelope struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	AggregateType string          `json:"aggregateType"`
	AggregateID   string          `json:"aggregateId"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Payload       json.RawMessage `json:"payload"`
}

// EventPublisher writes outbox messages keyed by aggregate id, so the events of one
// item or container land on one partition in order.
type EventPublisher struct {
	writer Writer
	logger *zap.Logger
}

// NewEventPublisher creates a publisher writing to topic on brokers.
func NewEventPublisher(brokers []string, topic string, logger *zap.Logger) *EventPublisher {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		RequiredAcks:           skafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return NewEventPublisherWithWriter(w, logger)
}

// NewEventPublisherWithWriter allows injecting a test writer.
func NewEventPublisherWithWriter(w Writer, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{
		writer: w,
		logger: logger.With(zap.String("component", "kafka_publisher")),
	}
}

// Publish writes all messages in one batch. Either the whole batch is acknowledged or an
// error is returned and the caller keeps the messages for the next attempt.
func (p *EventPublisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]skafka.Message, 0, len(messages))
	for _, m := range messages {
		value, err := json.Marshal(Envelope{
			ID:            m.ID.String(),
			Type:          m.EventType,
			AggregateType: m.AggregateType,
			AggregateID:   m.AggregateID,
			OccurredAt:    m.OccurredAt.UTC(),
			Payload:       json.RawMessage(m.Payload),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", m.ID, err)
		}

		batch = append(batch, skafka.Message{
			Key:     []byte(m.AggregateID),
			Value:   value,
			Headers: []skafka.Header{{Key: "event-type", Value: []byte(m.EventType)}},
			Time:    m.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		p.logger.Error("kafka write failed", zap.Int("messages", len(batch)), zap.Error(err))
		return err
	}

	p.logger.Debug("events published", zap.Int("messages", len(batch)))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
