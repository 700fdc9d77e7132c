package commands

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrPublishOutboxEventsCommandIsNotConstructed = errors.New(
		"PublishOutboxEventsCommand must be created via NewPublishOutboxEventsCommand constructor",
	)
	ErrBatchSizeIsInvalid = errs.NewValueIsInvalidError("batch size must be greater than 0")
)

// PublishOutboxEventsCommand relays one batch of stored domain events.
type PublishOutboxEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishOutboxEventsCommand(batchSize int) (PublishOutboxEventsCommand, error) {
	if batchSize <= 0 {
		return PublishOutboxEventsCommand{}, ErrBatchSizeIsInvalid
	}

	return PublishOutboxEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishOutboxEventsCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxEventsCommandIsNotConstructed)
}

func (c PublishOutboxEventsCommand) BatchSize() int {
	return c.batchSize
}
