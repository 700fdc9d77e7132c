package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrCreateContainerCommandIsNotConstructed = errors.New(
		"CreateContainerCommand must be created via NewCreateContainerCommand constructor",
	)
)

// CreateContainerCommand represents a request to open a container for a destination.
// The new container is loaded with every item queued for that destination.
//
// Example:
//
//	cmd, err := NewCreateContainerCommand(1, "MY", receiver, "Port Klang")
//	if err != nil {
//	    return fmt.Errorf("invalid container data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type CreateContainerCommand struct { //nolint:recvcheck //using for validation
	shipmentType kernel.ShipmentType
	destination  kernel.Destination
	receiver     kernel.Address
	locationName string

	guard guard.ConstructorGuard
}

// NewCreateContainerCommand parses and validates the raw container attributes.
func NewCreateContainerCommand(
	shipmentType kernel.ShipmentType,
	destination string,
	receiver string,
	locationName string,
) (CreateContainerCommand, error) {
	dest, destErr := kernel.NewDestination(destination)
	addr, addrErr := kernel.NewAddress(receiver)

	if err := errors.Join(
		destErr,
		addrErr,
		validateText("location name", locationName, maxLocationLength),
	); err != nil {
		return CreateContainerCommand{}, err
	}

	return CreateContainerCommand{
		shipmentType: shipmentType,
		destination:  dest,
		receiver:     addr,
		locationName: locationName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateContainerCommand) Validate() error {
	return c.guard.Validate(ErrCreateContainerCommandIsNotConstructed)
}

func (c CreateContainerCommand) ShipmentType() kernel.ShipmentType {
	return c.shipmentType
}

func (c CreateContainerCommand) Destination() kernel.Destination {
	return c.destination
}

func (c CreateContainerCommand) Receiver() kernel.Address {
	return c.receiver
}

func (c CreateContainerCommand) LocationName() string {
	return c.locationName
}
