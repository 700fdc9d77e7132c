package pendingrepo

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/services"

	"gorm.io/gorm"
)

// GormPendingQueueRepository implements ports.PendingQueueRepository using GORM.
type GormPendingQueueRepository struct {
	db *gorm.DB
}

func NewGormPendingQueueRepository(db *gorm.DB) *GormPendingQueueRepository {
	return &GormPendingQueueRepository{db: db}
}

// Enqueue appends ref to the queue of destination. Duplicates are stored as separate entries.
func (r *GormPendingQueueRepository) Enqueue(
	ctx context.Context,
	registry kernel.Address,
	destination kernel.Destination,
	ref kernel.ItemRef,
) error {
	dto := PendingItemDTO{
		Registry:       registry.Hex(),
		Destination:    destination.String(),
		OriginRegistry: ref.Origin().Hex(),
		OriginItemID:   ref.ItemID(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Drain deletes and returns the queue of destination in enqueue order.
// Callers hold the registry lock, so no entry can be added between the read and the delete.
func (r *GormPendingQueueRepository) Drain(
	ctx context.Context,
	registry kernel.Address,
	destination kernel.Destination,
) ([]services.PendingItem, error) {
	db := r.db.WithContext(ctx)

	var dtos []PendingItemDTO
	if err := db.
		Where("registry = ? AND destination = ?", registry.Hex(), destination.String()).
		Order("seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return []services.PendingItem{}, nil
	}

	items := make([]services.PendingItem, 0, len(dtos))
	seqs := make([]uint64, 0, len(dtos))
	for _, dto := range dtos {
		origin, err := kernel.NewAddress(dto.OriginRegistry)
		if err != nil {
			return nil, err
		}
		ref, err := kernel.NewItemRef(origin, dto.OriginItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, services.PendingItem{Destination: destination, Ref: ref})
		seqs = append(seqs, dto.Seq)
	}

	if err := db.Where("seq IN ?", seqs).Delete(&PendingItemDTO{}).Error; err != nil {
		return nil, err
	}

	return items, nil
}
