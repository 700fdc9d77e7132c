package services

import (
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/container"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
	"tracking/internal/pkg/errs"
)

// ContainerAttributes carries the caller-supplied attributes of a new container.
type ContainerAttributes struct {
	ShipmentType kernel.ShipmentType
	Destination  kernel.Destination
	Receiver     kernel.Address
	LocationName string
}

// ContainerLoader is a domain service that turns a drained pending queue into a container.
//
// Business rules:
//   - The registry must be a container registry
//   - Every pending reference must have been queued for the container's destination
//   - References keep their enqueue order
//   - The container id is allocated from the registry only when the container is valid
//
// Example usage:
//
//	loader := NewContainerLoader()
//	pending, _ := pendingRepo.Drain(ctx, reg.Address(), attrs.Destination)
//	c, err := loader.Load(reg, attrs, pending)
//	if err != nil {
//	    return err
//	}
//	// persist reg and c in the same unit of work
type ContainerLoader struct{}

func NewContainerLoader() ContainerLoader {
	return ContainerLoader{}
}

// PendingItem is one entry drained from a destination's pending queue.
type PendingItem struct {
	Destination kernel.Destination
	Ref         kernel.ItemRef
}

// Load validates the inputs, allocates the next container id and builds the container.
//
// Returns:
//   - *container.Container: the new container in Processing status
//   - error: InvalidInput for a wrong registry kind, invalid attributes or a pending
//     entry queued for another destination; no id is consumed in that case
func (l ContainerLoader) Load(reg *registry.Registry, attrs ContainerAttributes, pending []PendingItem) (*container.Container, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	if err := errors.Join(
		reg.ExpectKind(registry.Container),
		attrs.Destination.Validate(),
		attrs.Receiver.Validate(),
	); err != nil {
		return nil, err
	}

	refs := make([]kernel.ItemRef, 0, len(pending))
	for _, p := range pending {
		if p.Ref.ItemID() == 0 || p.Ref.Origin().IsZero() {
			return nil, errs.NewValueIsRequiredError("pending item reference")
		}
		if !p.Destination.IsEqual(attrs.Destination) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"pending item",
				fmt.Errorf("%s was queued for %s, not %s", p.Ref, p.Destination, attrs.Destination),
			)
		}
		refs = append(refs, p.Ref)
	}

	return container.NewContainer(reg.Address(), reg.NextID(), attrs.ShipmentType,
		attrs.Destination, attrs.Receiver, attrs.LocationName, refs)
}
