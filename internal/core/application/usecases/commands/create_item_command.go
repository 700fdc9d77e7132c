package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price must be greater than 0")
)

// CreateItemCommand represents a request to register a new parcel with the courier registry.
//
// Example:
//
//	cmd, err := NewCreateItemCommand(1, "MY", receiver, "Penang", payee, 10000)
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	shipmentType     kernel.ShipmentType
	destination      kernel.Destination
	receiver         kernel.Address
	receiverLocation string
	payee            kernel.Address
	price            int64

	guard guard.ConstructorGuard
}

// NewCreateItemCommand parses and validates the raw item attributes.
// Returns an InvalidInput error for malformed addresses, destination, a non-positive price
// or a receiver location longer than 255 characters.
func NewCreateItemCommand(
	shipmentType kernel.ShipmentType,
	destination string,
	receiver string,
	receiverLocation string,
	payee string,
	price int64,
) (CreateItemCommand, error) {
	cmd := CreateItemCommand{
		shipmentType:     shipmentType,
		receiverLocation: receiverLocation,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDestination(destination),
		cmd.setReceiver(receiver),
		cmd.setPayee(payee),
		cmd.setPrice(price),
		validateText("receiver location", receiverLocation, maxLocationLength),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) ShipmentType() kernel.ShipmentType {
	return c.shipmentType
}

func (c CreateItemCommand) Destination() kernel.Destination {
	return c.destination
}

func (c CreateItemCommand) Receiver() kernel.Address {
	return c.receiver
}

func (c CreateItemCommand) ReceiverLocation() string {
	return c.receiverLocation
}

func (c CreateItemCommand) Payee() kernel.Address {
	return c.payee
}

func (c CreateItemCommand) Price() int64 {
	return c.price
}

func (c *CreateItemCommand) setDestination(destination string) error {
	d, err := kernel.NewDestination(destination)
	if err != nil {
		return err
	}
	c.destination = d
	return nil
}

func (c *CreateItemCommand) setReceiver(receiver string) error {
	addr, err := kernel.NewAddress(receiver)
	if err != nil {
		return err
	}
	c.receiver = addr
	return nil
}

func (c *CreateItemCommand) setPayee(payee string) error {
	addr, err := kernel.NewAddress(payee)
	if err != nil {
		return err
	}
	c.payee = addr
	return nil
}

func (c *CreateItemCommand) setPrice(price int64) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}
	c.price = price
	return nil
}
