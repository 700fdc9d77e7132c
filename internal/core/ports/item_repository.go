// Package ports defines the contracts between the tracking core and its adapters:
// persistence, the escrow ledger, the event outbox and the cross-registry handoff.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/item"
	"tracking/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for item aggregates.
type ItemRepository interface {
	// Add persists a new item with its (empty) audit trail.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists the status and appends checkpoints not yet stored.
	// Stored checkpoints are never rewritten.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item of the given courier registry with its full audit trail.
	// Returns an errs.ObjectNotFoundError when the item does not exist.
	Get(ctx context.Context, registry kernel.Address, id uint64) (*item.Item, error)
}
