package itemrepo

import (
	"context"
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/item"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ports.ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item together with any checkpoints it already carries.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.AggregateID(), aggregate)
	return nil
}

// Update stores the status and appends checkpoints that are not stored yet.
// Existing checkpoint rows are left untouched.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ItemDTO{}).
		Where("registry = ? AND id = ?", dto.Registry, dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Checkpoints) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Checkpoints).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.AggregateID(), aggregate)
	return nil
}

// Get retrieves an item with its checkpoints in recording order.
func (r *GormItemRepository) Get(ctx context.Context, registry kernel.Address, id uint64) (*item.Item, error) {
	if err := registry.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	err := r.db.WithContext(ctx).
		Preload("Checkpoints", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "registry = ? AND id = ?", registry.Hex(), id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", fmt.Sprintf("%s/%d", registry, id))
		}
		return nil, err
	}

	return toDomain(dto)
}
