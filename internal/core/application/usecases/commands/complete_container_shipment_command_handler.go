package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
)

// CompleteContainerShipmentCommandHandler closes containers. Item statuses are
// tracked by their courier registries and are not touched here.
type CompleteContainerShipmentCommandHandler struct {
	uowFactory ContainerUoWFactory
	registry   kernel.Address
}

func NewCompleteContainerShipmentCommandHandler(
	uowFactory ContainerUoWFactory,
	registryAddress kernel.Address,
) CompleteContainerShipmentCommandHandler {
	return CompleteContainerShipmentCommandHandler{
		uowFactory: uowFactory,
		registry:   registryAddress,
	}
}

func (h CompleteContainerShipmentCommandHandler) Handle(ctx context.Context, cmd CompleteContainerShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	checkpoint, err := kernel.NewCheckpoint(
		cmd.StatusLabel(),
		cmd.Description(),
		kernel.Address{},
		cmd.Location(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containerRepo := uow.ContainerRepository()

	if _, err = uow.RegistryRepository().Acquire(ctx, h.registry, registry.Container); err != nil {
		return err
	}

	c, err := containerRepo.Get(ctx, h.registry, cmd.ContainerID())
	if err != nil {
		return err
	}

	if err = c.Complete(checkpoint); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
