package commands

import (
	"context"
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

const enqueueOperation = "enqueue pending item"

// ForwardItemCommandHandler performs the courier side of the handoff protocol.
//
// The item update and the remote enqueue form one logical step: the local transaction
// commits only after the target registry accepted the entry. When the target rejects
// the call or cannot be reached, the local transaction rolls back and the item keeps
// its previous status and checkpoints.
//
// Example:
//
//	handler := NewForwardItemCommandHandler(uowFactory, directory, courierRegistryAddress)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrRemoteCallFailed):
//	    // target registry unavailable; nothing changed locally
//	case errors.Is(err, errs.ErrStateIsInvalid):
//	    // item already completed or missing
//	}
type ForwardItemCommandHandler struct {
	uowFactory CourierUoWFactory
	directory  ports.RegistryDirectory
	registry   kernel.Address
}

// NewForwardItemCommandHandler creates a handler bound to the courier registry at registryAddress.
func NewForwardItemCommandHandler(
	uowFactory CourierUoWFactory,
	directory ports.RegistryDirectory,
	registryAddress kernel.Address,
) ForwardItemCommandHandler {
	return ForwardItemCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		registry:   registryAddress,
	}
}

// Handle forwards the item. The target registry is resolved before any state is touched.
func (h ForwardItemCommandHandler) Handle(ctx context.Context, cmd ForwardItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	client, err := h.directory.Resolve(cmd.TargetRegistry())
	if err != nil {
		return err
	}

	checkpoint, err := kernel.NewCheckpoint(
		cmd.StatusLabel(),
		cmd.Description(),
		cmd.TargetRegistry(),
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

	if err = it.Forward(cmd.TargetRegistry(), cmd.Destination(), checkpoint); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, it); err != nil {
		return err
	}

	if err = client.EnqueuePendingItem(ctx, cmd.Destination(), it.Ref()); err != nil {
		if !errors.Is(err, errs.ErrRemoteCallFailed) {
			err = errs.NewRemoteCallFailedError(cmd.TargetRegistry().String(), enqueueOperation, err)
		}
		return err
	}

	return uow.Commit(ctx)
}
