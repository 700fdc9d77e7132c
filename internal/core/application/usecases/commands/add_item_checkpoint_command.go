package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrAddItemCheckpointCommandIsNotConstructed = errors.New(
		"AddItemCheckpointCommand must be created via NewAddItemCheckpointCommand constructor",
	)
)

// AddItemCheckpointCommand appends a progress entry to an item's audit trail.
// The handler address is optional; an empty string records the zero address.
type AddItemCheckpointCommand struct { //nolint:recvcheck //using for validation
	itemID     uint64
	handler    kernel.Address
	checkpoint checkpointInput

	guard guard.ConstructorGuard
}

func NewAddItemCheckpointCommand(
	itemID uint64,
	statusLabel string,
	description string,
	handler string,
	location string,
) (AddItemCheckpointCommand, error) {
	addr, addrErr := kernel.ParseOptionalAddress(handler)
	cp, cpErr := newCheckpointInput(statusLabel, description, location)

	if err := errors.Join(validateID("item id", itemID), addrErr, cpErr); err != nil {
		return AddItemCheckpointCommand{}, err
	}

	return AddItemCheckpointCommand{
		itemID:     itemID,
		handler:    addr,
		checkpoint: cp,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddItemCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCheckpointCommandIsNotConstructed)
}

func (c AddItemCheckpointCommand) ItemID() uint64 {
	return c.itemID
}

func (c AddItemCheckpointCommand) Handler() kernel.Address {
	return c.handler
}

func (c AddItemCheckpointCommand) StatusLabel() string {
	return c.checkpoint.statusLabel
}

func (c AddItemCheckpointCommand) Description() string {
	return c.checkpoint.description
}

func (c AddItemCheckpointCommand) Location() string {
	return c.checkpoint.location
}
