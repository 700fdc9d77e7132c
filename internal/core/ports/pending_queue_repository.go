package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/services"
)

// PendingQueueRepository stores the per-destination queues of a container registry.
type PendingQueueRepository interface {
	// Enqueue appends ref to the destination's queue. Calling it twice queues ref twice.
	Enqueue(ctx context.Context, registry kernel.Address, destination kernel.Destination, ref kernel.ItemRef) error

	// Drain removes and returns every entry queued for destination, in enqueue order.
	// Entries for other destinations are untouched.
	Drain(ctx context.Context, registry kernel.Address, destination kernel.Destination) ([]services.PendingItem, error)
}
