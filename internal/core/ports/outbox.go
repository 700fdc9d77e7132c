package ports

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// OutboxMessage is a stored domain event waiting to be published.
type OutboxMessage struct {
	ID            kernel.UUID
	EventType     string
	AggregateType string
	AggregateID   string
	Payload       []byte
	OccurredAt    time.Time
}

// OutboxRepository stores domain events in the same transaction as the state change
// that raised them.
type OutboxRepository interface {
	// Add stores events as unpublished.
	Add(ctx context.Context, events ...kernel.DomainEvent) error

	// FetchUnpublished returns up to limit unpublished messages, oldest first, locking
	// them so concurrent relays skip them.
	FetchUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished flags messages as delivered.
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to subscribers outside the registries.
type EventPublisher interface {
	Publish(ctx context.Context, messages []OutboxMessage) error
}
