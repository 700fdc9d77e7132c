package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrEnqueuePendingItemCommandIsNotConstructed = errors.New(
		"EnqueuePendingItemCommand must be created via NewEnqueuePendingItemCommand constructor",
	)
)

// EnqueuePendingItemCommand is the container side of the handoff: a courier registry
// asks to queue one of its items until a container for destination is created.
//
// Example:
//
//	cmd, err := NewEnqueuePendingItemCommand("MY", courierRegistry, 7)
type EnqueuePendingItemCommand struct { //nolint:recvcheck //using for validation
	destination kernel.Destination
	ref         kernel.ItemRef

	guard guard.ConstructorGuard
}

// NewEnqueuePendingItemCommand validates the destination and the origin reference.
func NewEnqueuePendingItemCommand(
	destination string,
	originRegistry string,
	originItemID uint64,
) (EnqueuePendingItemCommand, error) {
	dest, destErr := kernel.NewDestination(destination)
	origin, originErr := kernel.NewAddress(originRegistry)
	if err := errors.Join(destErr, originErr); err != nil {
		return EnqueuePendingItemCommand{}, err
	}

	ref, err := kernel.NewItemRef(origin, originItemID)
	if err != nil {
		return EnqueuePendingItemCommand{}, err
	}

	return EnqueuePendingItemCommand{
		destination: dest,
		ref:         ref,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EnqueuePendingItemCommand) Validate() error {
	return c.guard.Validate(ErrEnqueuePendingItemCommandIsNotConstructed)
}

func (c EnqueuePendingItemCommand) Destination() kernel.Destination {
	return c.destination
}

// Ref returns the origin registry and item id of the queued item.
func (c EnqueuePendingItemCommand) Ref() kernel.ItemRef {
	return c.ref
}
