package queries

import (
	"context"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetItemCheckpointsQueryHandler reads item audit trails of one courier registry.
type GetItemCheckpointsQueryHandler struct {
	db       *gorm.DB
	registry kernel.Address
}

func NewGetItemCheckpointsQueryHandler(db *gorm.DB, registryAddress kernel.Address) GetItemCheckpointsQueryHandler {
	return GetItemCheckpointsQueryHandler{db: db, registry: registryAddress}
}

// Handle returns the checkpoints ordered from first to last. An existing item with no
// checkpoints yields an empty slice; an unknown item yields NotFound.
func (h GetItemCheckpointsQueryHandler) Handle(
	ctx context.Context,
	query GetItemCheckpointsQuery,
) ([]CheckpointResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM items WHERE registry = ? AND id = ?)`,
		h.registry.Hex(), query.ItemID()).Row().Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("item", fmt.Sprintf("%s/%d", h.registry, query.ItemID()))
	}

	rows, err := db.Raw(`
		SELECT status_label, description, handler, location, recorded_at
		FROM item_checkpoints
		WHERE registry = ? AND item_id = ?
		ORDER BY position
	`, h.registry.Hex(), query.ItemID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheckpoints(rows)
}
