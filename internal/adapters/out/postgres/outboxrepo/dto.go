// Package outboxrepo stores domain events in the transaction that raised them until
// the relay publishes them.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"
)

// EventDTO is one stored domain event. PublishedAt stays NULL until the relay delivered it.
type EventDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventType     string     `gorm:"type:varchar(64);not null"`
	AggregateType string     `gorm:"type:varchar(32);not null"`
	AggregateID   string     `gorm:"type:varchar(64);not null;index"`
	Payload       string     `gorm:"type:jsonb;not null"`
	OccurredAt    time.Time  `gorm:"type:timestamptz;not null;index"`
	PublishedAt   *time.Time `gorm:"type:timestamptz;index"`
}

func (EventDTO) TableName() string {
	return "outbox_events"
}
