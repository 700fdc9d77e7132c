package commands

import (
	"context"

	"tracking/internal/core/domain/model/item"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
)

// CreateItemCommandHandler registers items with one courier registry.
// Ids are allocated from the registry's counter inside the same transaction.
//
// Example:
//
//	handler := NewCreateItemCommandHandler(uowFactory, courierRegistryAddress)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("item creation failed: %w", err)
//	}
//	fmt.Printf("item %d created in Processing status\n", id)
type CreateItemCommandHandler struct {
	uowFactory CourierUoWFactory
	registry   kernel.Address
}

// NewCreateItemCommandHandler creates a handler bound to the courier registry at registryAddress.
func NewCreateItemCommandHandler(uowFactory CourierUoWFactory, registryAddress kernel.Address) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
		registry:   registryAddress,
	}
}

// Handle creates the item and returns its id.
func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) (uint64, error) {
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
	itemRepo := uow.ItemRepository()

	reg, err := registryRepo.Acquire(ctx, h.registry, registry.Courier)
	if err != nil {
		return 0, err
	}

	it, err := item.NewItem(
		reg.Address(),
		reg.NextID(),
		cmd.ShipmentType(),
		cmd.Destination(),
		cmd.Receiver(),
		cmd.ReceiverLocation(),
		cmd.Payee(),
		cmd.Price(),
	)
	if err != nil {
		return 0, err
	}

	if err = itemRepo.Add(ctx, it); err != nil {
		return 0, err
	}

	if err = registryRepo.Update(ctx, reg); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return it.ID(), nil
}
