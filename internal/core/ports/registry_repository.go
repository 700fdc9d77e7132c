package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
)

// RegistryRepository persists registry identities and their id counters.
type RegistryRepository interface {
	// Acquire loads the registry for a mutation, creating it on first use, and holds
	// a lock on it until the surrounding transaction ends. Mutations of one registry
	// therefore apply one at a time.
	//
	// Returns an InvalidInput error when address is already bound to the other kind.
	Acquire(ctx context.Context, address kernel.Address, kind registry.Kind) (*registry.Registry, error)

	// Update stores the id counter.
	Update(ctx context.Context, aggregate *registry.Registry) error
}
