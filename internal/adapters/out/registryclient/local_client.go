package registryclient

import (
	"context"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
)

// Enqueuer is the enqueue use case of a container registry hosted by this process.
type Enqueuer interface {
	Handle(ctx context.Context, cmd commands.EnqueuePendingItemCommand) error
}

var _ ports.ContainerRegistryClient = LocalClient{}

// LocalClient hands items to a container registry of the same process. The enqueue runs
// in its own transaction and commits before EnqueuePendingItem returns.
type LocalClient struct {
	enqueuer Enqueuer
}

func NewLocalClient(enqueuer Enqueuer) LocalClient {
	return LocalClient{enqueuer: enqueuer}
}

func (c LocalClient) EnqueuePendingItem(ctx context.Context, destination kernel.Destination, ref kernel.ItemRef) error {
	cmd, err := commands.NewEnqueuePendingItemCommand(destination.String(), ref.Origin().String(), ref.ItemID())
	if err != nil {
		return err
	}
	return c.enqueuer.Handle(ctx, cmd)
}
