package commands

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
)

// EnqueuePendingItemCommandHandler appends handed-off items to the pending queues of
// one container registry. The same reference enqueued twice is stored twice.
//
// Example:
//
//	handler := NewEnqueuePendingItemCommandHandler(uowFactory, containerRegistryAddress)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type EnqueuePendingItemCommandHandler struct {
	uowFactory ContainerUoWFactory
	registry   kernel.Address
}

// NewEnqueuePendingItemCommandHandler creates a handler bound to the container registry at registryAddress.
func NewEnqueuePendingItemCommandHandler(
	uowFactory ContainerUoWFactory,
	registryAddress kernel.Address,
) EnqueuePendingItemCommandHandler {
	return EnqueuePendingItemCommandHandler{
		uowFactory: uowFactory,
		registry:   registryAddress,
	}
}

// Handle commits the queue entry before returning, so a courier registry that sees
// success can rely on the entry being durable.
func (h EnqueuePendingItemCommandHandler) Handle(ctx context.Context, cmd EnqueuePendingItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registryRepo := uow.RegistryRepository()

	reg, err := registryRepo.Acquire(ctx, h.registry, registry.Container)
	if err != nil {
		return err
	}

	if err = uow.PendingQueueRepository().Enqueue(ctx, h.registry, cmd.Destination(), cmd.Ref()); err != nil {
		return err
	}

	if err = reg.RecordPendingItem(cmd.Destination(), cmd.Ref()); err != nil {
		return err
	}

	if err = registryRepo.Update(ctx, reg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
