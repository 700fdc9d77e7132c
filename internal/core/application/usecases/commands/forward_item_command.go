package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrForwardItemCommandIsNotConstructed = errors.New(
		"ForwardItemCommand must be created via NewForwardItemCommand constructor",
	)
)

// ForwardItemCommand hands an item over to a container registry, which queues it
// for destination until a container for that destination is created.
//
// Example:
//
//	cmd, err := NewForwardItemCommand(1, containerRegistry, "MY", "Forwarded to container", "", "Port Klang")
type ForwardItemCommand struct { //nolint:recvcheck //using for validation
	itemID         uint64
	targetRegistry kernel.Address
	destination    kernel.Destination
	checkpoint     checkpointInput

	guard guard.ConstructorGuard
}

// NewForwardItemCommand validates the target registry address, destination and checkpoint label.
func NewForwardItemCommand(
	itemID uint64,
	targetRegistry string,
	destination string,
	statusLabel string,
	description string,
	location string,
) (ForwardItemCommand, error) {
	cmd := ForwardItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}

	target, targetErr := kernel.NewAddress(targetRegistry)
	dest, destErr := kernel.NewDestination(destination)
	cp, cpErr := newCheckpointInput(statusLabel, description, location)

	if err := errors.Join(validateID("item id", itemID), targetErr, destErr, cpErr); err != nil {
		return ForwardItemCommand{}, err
	}

	cmd.targetRegistry = target
	cmd.destination = dest
	cmd.checkpoint = cp
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ForwardItemCommand) Validate() error {
	return c.guard.Validate(ErrForwardItemCommandIsNotConstructed)
}

func (c ForwardItemCommand) ItemID() uint64 {
	return c.itemID
}

// TargetRegistry returns the container registry that receives the item.
func (c ForwardItemCommand) TargetRegistry() kernel.Address {
	return c.targetRegistry
}

// Destination returns the batching key the item is queued under.
func (c ForwardItemCommand) Destination() kernel.Destination {
	return c.destination
}

func (c ForwardItemCommand) StatusLabel() string {
	return c.checkpoint.statusLabel
}

func (c ForwardItemCommand) Description() string {
	return c.checkpoint.description
}

func (c ForwardItemCommand) Location() string {
	return c.checkpoint.location
}
