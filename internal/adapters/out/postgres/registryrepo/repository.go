package registryrepo

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRegistryRepository implements ports.RegistryRepository using GORM.
type GormRegistryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormRegistryRepository creates a new GORM registry repository.
func NewGormRegistryRepository(db *gorm.DB, tracker aggregateTracker) *GormRegistryRepository {
	return &GormRegistryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Acquire inserts the registry row on first use and then locks it with SELECT ... FOR UPDATE.
// The lock is held until the surrounding transaction ends.
func (r *GormRegistryRepository) Acquire(
	ctx context.Context,
	address kernel.Address,
	kind registry.Kind,
) (*registry.Registry, error) {
	fresh, err := registry.NewRegistry(address, kind)
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	dto := fromDomain(fresh)
	if err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error; err != nil {
		return nil, err
	}

	var stored RegistryDTO
	if err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&stored, "address = ?", address.Hex()).Error; err != nil {
		return nil, err
	}

	reg, err := toDomain(stored)
	if err != nil {
		return nil, err
	}

	if err = reg.ExpectKind(kind); err != nil {
		return nil, err
	}

	return reg, nil
}

// Update stores the id counter of an acquired registry.
func (r *GormRegistryRepository) Update(ctx context.Context, aggregate *registry.Registry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RegistryDTO{}).
		Where("address = ?", aggregate.Address().Hex()).
		Update("last_id", aggregate.LastID())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.Address().Hex(), aggregate)
	return nil
}
