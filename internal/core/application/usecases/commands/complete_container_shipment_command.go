package commands

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var (
	ErrCompleteContainerShipmentCommandIsNotConstructed = errors.New(
		"CompleteContainerShipmentCommand must be created via NewCompleteContainerShipmentCommand constructor",
	)
)

// CompleteContainerShipmentCommand ends the bulk shipment of an Ongoing container.
type CompleteContainerShipmentCommand struct { //nolint:recvcheck //using for validation
	containerID uint64
	checkpoint  checkpointInput

	guard guard.ConstructorGuard
}

func NewCompleteContainerShipmentCommand(
	containerID uint64,
	statusLabel string,
	description string,
	location string,
) (CompleteContainerShipmentCommand, error) {
	cp, cpErr := newCheckpointInput(statusLabel, description, location)
	if err := errors.Join(validateID("container id", containerID), cpErr); err != nil {
		return CompleteContainerShipmentCommand{}, err
	}

	return CompleteContainerShipmentCommand{
		containerID: containerID,
		checkpoint:  cp,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteContainerShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteContainerShipmentCommandIsNotConstructed)
}

func (c CompleteContainerShipmentCommand) ContainerID() uint64 {
	return c.containerID
}

func (c CompleteContainerShipmentCommand) StatusLabel() string {
	return c.checkpoint.statusLabel
}

func (c CompleteContainerShipmentCommand) Description() string {
	return c.checkpoint.description
}

func (c CompleteContainerShipmentCommand) Location() string {
	return c.checkpoint.location
}
