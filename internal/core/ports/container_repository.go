package ports

import (
	"context"

	"tracking/internal/core/domain/model/container"
	"tracking/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for container aggregates.
type ContainerRepository interface {
	// Add persists a new container with its loaded item references.
	Add(ctx context.Context, aggregate *container.Container) error

	// Update persists the status and appends checkpoints not yet stored.
	Update(ctx context.Context, aggregate *container.Container) error

	// Get retrieves a container of the given registry.
	// Returns an errs.ObjectNotFoundError when the container does not exist.
	Get(ctx context.Context, registry kernel.Address, id uint64) (*container.Container, error)
}
