package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
)

// ContainerRegistryClient is the handoff entry point of one container registry
// as seen from a courier registry.
type ContainerRegistryClient interface {
	// EnqueuePendingItem queues ref for destination on the target registry.
	// It returns only after the target committed the entry, or with an error
	// wrapping errs.ErrRemoteCallFailed when the target rejected the call or
	// could not be reached.
	EnqueuePendingItem(ctx context.Context, destination kernel.Destination, ref kernel.ItemRef) error
}

// RegistryDirectory resolves container registry addresses to clients.
type RegistryDirectory interface {
	// Resolve returns an InvalidInput error when address is not a known container registry.
	Resolve(address kernel.Address) (ContainerRegistryClient, error)
}
