package commands

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrCompleteItemShipmentCommandIsNotConstructed = errors.New(
		"CompleteItemShipmentCommand must be created via NewCompleteItemShipmentCommand constructor",
	)
	ErrPaymentIsInvalid = errs.NewValueIsInvalidError("payment must not be negative")
)

// CompleteItemShipmentCommand confirms delivery of an item together with the payment
// that settles it. The payment must equal the price agreed at creation.
//
// Example:
//
//	cmd, err := NewCompleteItemShipmentCommand(1, "Delivered", "Signed by receiver", "Penang", 10000)
type CompleteItemShipmentCommand struct { //nolint:recvcheck //using for validation
	itemID     uint64
	payment    int64
	checkpoint checkpointInput

	guard guard.ConstructorGuard
}

// NewCompleteItemShipmentCommand rejects a negative payment. A payment that differs from
// the price is detected by the item itself.
func NewCompleteItemShipmentCommand(
	itemID uint64,
	statusLabel string,
	description string,
	location string,
	payment int64,
) (CompleteItemShipmentCommand, error) {
	var paymentErr error
	if payment < 0 {
		paymentErr = ErrPaymentIsInvalid
	}
	cp, cpErr := newCheckpointInput(statusLabel, description, location)

	if err := errors.Join(validateID("item id", itemID), cpErr, paymentErr); err != nil {
		return CompleteItemShipmentCommand{}, err
	}

	return CompleteItemShipmentCommand{
		itemID:     itemID,
		payment:    payment,
		checkpoint: cp,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteItemShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteItemShipmentCommandIsNotConstructed)
}

func (c CompleteItemShipmentCommand) ItemID() uint64 {
	return c.itemID
}

// Payment returns the amount attached to the completion.
func (c CompleteItemShipmentCommand) Payment() int64 {
	return c.payment
}

func (c CompleteItemShipmentCommand) StatusLabel() string {
	return c.checkpoint.statusLabel
}

func (c CompleteItemShipmentCommand) Description() string {
	return c.checkpoint.description
}

func (c CompleteItemShipmentCommand) Location() string {
	return c.checkpoint.location
}
