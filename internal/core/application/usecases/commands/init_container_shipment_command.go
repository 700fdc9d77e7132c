package commands

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var (
	ErrInitContainerShipmentCommandIsNotConstructed = errors.New(
		"InitContainerShipmentCommand must be created via NewInitContainerShipmentCommand constructor",
	)
)

// InitContainerShipmentCommand starts the bulk shipment of a Processing container.
type InitContainerShipmentCommand struct { //nolint:recvcheck //using for validation
	containerID uint64
	checkpoint  checkpointInput

	guard guard.ConstructorGuard
}

func NewInitContainerShipmentCommand(
	containerID uint64,
	statusLabel string,
	description string,
	location string,
) (InitContainerShipmentCommand, error) {
	cp, cpErr := newCheckpointInput(statusLabel, description, location)
	if err := errors.Join(validateID("container id", containerID), cpErr); err != nil {
		return InitContainerShipmentCommand{}, err
	}

	return InitContainerShipmentCommand{
		containerID: containerID,
		checkpoint:  cp,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c InitContainerShipmentCommand) Validate() error {
	return c.guard.Validate(ErrInitContainerShipmentCommandIsNotConstructed)
}

func (c InitContainerShipmentCommand) ContainerID() uint64 {
	return c.containerID
}

func (c InitContainerShipmentCommand) StatusLabel() string {
	return c.checkpoint.statusLabel
}

func (c InitContainerShipmentCommand) Description() string {
	return c.checkpoint.description
}

func (c InitContainerShipmentCommand) Location() string {
	return c.checkpoint.location
}
