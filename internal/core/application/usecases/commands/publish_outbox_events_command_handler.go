package commands

import (
	"context"
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
)

// ErrNoOutboxEvents reports that there was nothing to publish.
var ErrNoOutboxEvents = errors.New("no unpublished outbox events")

// PublishOutboxEventsCommandHandler moves stored domain events to the event publisher.
//
// Messages are marked as published only after the publisher accepted the whole batch,
// so delivery is at-least-once: a crash between publish and commit republishes the batch.
type PublishOutboxEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewPublishOutboxEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) PublishOutboxEventsCommandHandler {
	return PublishOutboxEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes one batch and returns the number of published messages.
// Returns ErrNoOutboxEvents when the outbox is empty.
func (h PublishOutboxEventsCommandHandler) Handle(ctx context.Context, cmd PublishOutboxEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()

	messages, err := outboxRepo.FetchUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, ErrNoOutboxEvents
	}

	if err = h.publisher.Publish(ctx, messages); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	if err = outboxRepo.MarkPublished(ctx, ids, time.Now().UTC()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(messages), nil
}
