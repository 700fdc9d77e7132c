package commands

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var (
	ErrSetItemAsMissingCommandIsNotConstructed = errors.New(
		"SetItemAsMissingCommand must be created via NewSetItemAsMissingCommand constructor",
	)
)

// SetItemAsMissingCommand flags an item as lost. Missing is terminal.
type SetItemAsMissingCommand struct { //nolint:recvcheck //using for validation
	itemID uint64

	guard guard.ConstructorGuard
}

func NewSetItemAsMissingCommand(itemID uint64) (SetItemAsMissingCommand, error) {
	if err := validateID("item id", itemID); err != nil {
		return SetItemAsMissingCommand{}, err
	}

	return SetItemAsMissingCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SetItemAsMissingCommand) Validate() error {
	return c.guard.Validate(ErrSetItemAsMissingCommandIsNotConstructed)
}

func (c SetItemAsMissingCommand) ItemID() uint64 {
	return c.itemID
}
