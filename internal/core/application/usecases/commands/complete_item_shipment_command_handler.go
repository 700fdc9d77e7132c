package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
)

// CompleteItemShipmentCommandHandler completes an item and releases its escrowed
// payment to the payee.
//
// The status change and the escrow release happen in the same transaction: either the
// item becomes Completed and the payee is credited, or neither happens.
//
// Example:
//
//	handler := NewCompleteItemShipmentCommandHandler(uowFactory, courierRegistryAddress)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPaymentMismatch) {
//	    // payment differs from the item price; nothing changed
//	}
type CompleteItemShipmentCommandHandler struct {
	uowFactory CourierUoWFactory
	registry   kernel.Address
}

// NewCompleteItemShipmentCommandHandler creates a handler bound to the courier registry at registryAddress.
func NewCompleteItemShipmentCommandHandler(
	uowFactory CourierUoWFactory,
	registryAddress kernel.Address,
) CompleteItemShipmentCommandHandler {
	return CompleteItemShipmentCommandHandler{
		uowFactory: uowFactory,
		registry:   registryAddress,
	}
}

// Handle completes the item. The item must be Ongoing and the payment must match its price.
func (h CompleteItemShipmentCommandHandler) Handle(ctx context.Context, cmd CompleteItemShipmentCommand) error {
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

	itemRepo := uow.ItemRepository()

	if _, err = uow.RegistryRepository().Acquire(ctx, h.registry, registry.Courier); err != nil {
		return err
	}

	it, err := itemRepo.Get(ctx, h.registry, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = it.Complete(checkpoint, cmd.Payment()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, it); err != nil {
		return err
	}

	if err = uow.EscrowLedger().Release(ctx, it.Payee(), cmd.Payment(), it.Ref()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
