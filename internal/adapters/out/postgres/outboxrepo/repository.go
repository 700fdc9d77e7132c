package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores events as unpublished. The payload is serialized to JSON.
func (r *GormOutboxRepository) Add(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			return err
		}
		dtos = append(dtos, EventDTO{
			ID:            event.ID.Bytes(),
			EventType:     event.Name,
			AggregateType: event.AggregateType,
			AggregateID:   event.AggregateID,
			Payload:       string(payload),
			OccurredAt:    event.OccurredAt,
		})
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// FetchUnpublished locks up to limit unpublished events, oldest first. Rows locked by
// another relay are skipped.
func (r *GormOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		messages = append(messages, ports.OutboxMessage{
			ID:            id,
			EventType:     dto.EventType,
			AggregateType: dto.AggregateType,
			AggregateID:   dto.AggregateID,
			Payload:       []byte(dto.Payload),
			OccurredAt:    dto.OccurredAt,
		})
	}

	return messages, nil
}

// MarkPublished sets published_at for ids.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at).Error
}
