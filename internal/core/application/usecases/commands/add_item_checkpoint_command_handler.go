package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
)

// AddItemCheckpointCommandHandler records checkpoints on items of one courier registry.
// Items in a terminal status reject new checkpoints.
type AddItemCheckpointCommandHandler struct {
	uowFactory CourierUoWFactory
	registry   kernel.Address
}

func NewAddItemCheckpointCommandHandler(
	uowFactory CourierUoWFactory,
	registryAddress kernel.Address,
) AddItemCheckpointCommandHandler {
	return AddItemCheckpointCommandHandler{
		uowFactory: uowFactory,
		registry:   registryAddress,
	}
}

func (h AddItemCheckpointCommandHandler) Handle(ctx context.Context, cmd AddItemCheckpointCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	checkpoint, err := kernel.NewCheckpoint(
		cmd.StatusLabel(),
		cmd.Description(),
		cmd.Handler(),
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

	itemRepo := uow.ItemRepository()

	if _, err = uow.RegistryRepository().Acquire(ctx, h.registry, registry.Courier); err != nil {
		return err
	}

	it, err := itemRepo.Get(ctx, h.registry, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = it.AddCheckpoint(checkpoint); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
