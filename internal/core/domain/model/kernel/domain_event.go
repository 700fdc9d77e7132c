package kernel

import "time"

// DomainEvent records a state change of an aggregate. Aggregates collect events
// while they mutate; the unit of work stores them in the outbox on commit.
type DomainEvent struct {
	ID            UUID
	Name          string
	AggregateType string
	AggregateID   string
	OccurredAt    time.Time
	Payload       map[string]any
}

// NewDomainEvent stamps an event with a fresh id and the current UTC time.
func NewDomainEvent(name, aggregateType, aggregateID string, payload map[string]any) DomainEvent {
	return DomainEvent{
		ID:            NewUUID(),
		Name:          name,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		OccurredAt:    time.Now().UTC(),
		Payload:       payload,
	}
}
