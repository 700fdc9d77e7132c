package containerrepo

import (
	"context"
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/container"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContainerRepository implements ports.ContainerRepository using GORM.
type GormContainerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormContainerRepository creates a new GORM container repository.
func NewGormContainerRepository(db *gorm.DB, tracker aggregateTracker) *GormContainerRepository {
	return &GormContainerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new container with its item references.
func (r *GormContainerRepository) Add(ctx context.Context, aggregate *container.Container) error {
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

// Update stores the status and appends new checkpoints. The item list is immutable.
func (r *GormContainerRepository) Update(ctx context.Context, aggregate *container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ContainerDTO{}).
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

// Get retrieves a container with its items and checkpoints.
func (r *GormContainerRepository) Get(
	ctx context.Context,
	registry kernel.Address,
	id uint64,
) (*container.Container, error) {
	if err := registry.Validate(); err != nil {
		return nil, err
	}

	byPosition := func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}

	var dto ContainerDTO
	err := r.db.WithContext(ctx).
		Preload("Items", byPosition).
		Preload("Checkpoints", byPosition).
		First(&dto, "registry = ? AND id = ?", registry.Hex(), id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", fmt.Sprintf("%s/%d", registry, id))
		}
		return nil, err
	}

	return toDomain(dto)
}
