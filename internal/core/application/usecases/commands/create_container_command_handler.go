package commands

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
	"tracking/internal/core/domain/services"
)

// CreateContainerCommandHandler opens containers on one container registry.
//
// Business flow:
//  1. Lock the registry so concurrent enqueues wait for the container
//  2. Drain the pending queue of the requested destination
//  3. Build the container from the drained entries via services.ContainerLoader
//  4. Persist the container and the advanced id counter
//
// The drain and the container insert commit together. A failure at any step
// leaves the queue as it was.
//
// Example:
//
//	handler := NewCreateContainerCommandHandler(uowFactory, containerRegistryAddress)
//	id, err := handler.Handle(ctx, cmd)
type CreateContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
	loader     services.ContainerLoader
	registry   kernel.Address
}

// NewCreateContainerCommandHandler creates a handler bound to the container registry at registryAddress.
func NewCreateContainerCommandHandler(
	uowFactory ContainerUoWFactory,
	registryAddress kernel.Address,
) CreateContainerCommandHandler {
	return CreateContainerCommandHandler{
		uowFactory: uowFactory,
		loader:     services.NewContainerLoader(),
		registry:   registryAddress,
	}
}

// Handle creates the container and returns its id.
func (h CreateContainerCommandHandler) Handle(ctx context.Context, cmd CreateContainerCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registryRepo := uow.RegistryRepository()
	containerRepo := uow.ContainerRepository()

	reg, err := registryRepo.Acquire(ctx, h.registry, registry.Container)
	if err != nil {
		return 0, err
	}

	pending, err := uow.PendingQueueRepository().Drain(ctx, h.registry, cmd.Destination())
	if err != nil {
		return 0, err
	}

	c, err := h.loader.Load(reg, services.ContainerAttributes{
		ShipmentType: cmd.ShipmentType(),
		Destination:  cmd.Destination(),
		Receiver:     cmd.Receiver(),
		LocationName: cmd.LocationName(),
	}, pending)
	if err != nil {
		return 0, err
	}

	if err = containerRepo.Add(ctx, c); err != nil {
		return 0, err
	}

	if err = registryRepo.Update(ctx, reg); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return c.ID(), nil
}
