package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
)

const missingStatusLabel = "Missing"

// SetItemAsMissingCommandHandler marks items of one courier registry as missing and
// records a "Missing" checkpoint in their audit trail.
type SetItemAsMissingCommandHandler struct {
	uowFactory CourierUoWFactory
	registry   kernel.Address
}

func NewSetItemAsMissingCommandHandler(
	uowFactory CourierUoWFactory,
	registryAddress kernel.Address,
) SetItemAsMissingCommandHandler {
	return SetItemAsMissingCommandHandler{
		uowFactory: uowFactory,
		registry:   registryAddress,
	}
}

func (h SetItemAsMissingCommandHandler) Handle(ctx context.Context, cmd SetItemAsMissingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	checkpoint, err := kernel.NewCheckpoint(missingStatusLabel, "", kernel.Address{}, "", time.Now())
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

	if err = it.MarkMissing(checkpoint); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
