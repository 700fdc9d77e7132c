package queries

import (
	"errors"

	"tracking/internal/core/domain/model/container"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetContainerQueryIsNotConstructed = errors.New(
		"GetContainerQuery must be created via NewGetContainerQuery constructor",
	)
	ErrGetContainerItemsQueryIsNotConstructed = errors.New(
		"GetContainerItemsQuery must be created via NewGetContainerItemsQuery constructor",
	)
	ErrGetContainerCheckpointsQueryIsNotConstructed = errors.New(
		"GetContainerCheckpointsQuery must be created via NewGetContainerCheckpointsQuery constructor",
	)
)

// GetContainerQuery retrieves the snapshot of one container of the local container registry.
//
// Example:
//
//	query, err := NewGetContainerQuery(1)
//	c, err := handler.Handle(ctx, query)
//	fmt.Printf("container %d to %s carries %d items\n", c.ID, c.Destination, c.ItemCount)
type GetContainerQuery struct {
	containerID uint64

	guard guard.ConstructorGuard
}

func NewGetContainerQuery(containerID uint64) (GetContainerQuery, error) {
	if err := validateQueryID("container id", containerID); err != nil {
		return GetContainerQuery{}, err
	}
	return GetContainerQuery{containerID: containerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetContainerQuery) Validate() error {
	return q.guard.Validate(ErrGetContainerQueryIsNotConstructed)
}

func (q GetContainerQuery) ContainerID() uint64 {
	return q.containerID
}

// GetContainerQueryResponse is the container read model.
type GetContainerQueryResponse struct {
	ID              uint64
	Registry        kernel.Address
	ShipmentType    kernel.ShipmentType
	Destination     kernel.Destination
	Receiver        kernel.Address
	LocationName    string
	Status          container.Status
	ItemCount       int
	CheckpointCount int
}

// GetContainerItemsQuery retrieves the item references loaded into a container, in load order.
type GetContainerItemsQuery struct {
	containerID uint64

	guard guard.ConstructorGuard
}

func NewGetContainerItemsQuery(containerID uint64) (GetContainerItemsQuery, error) {
	if err := validateQueryID("container id", containerID); err != nil {
		return GetContainerItemsQuery{}, err
	}
	return GetContainerItemsQuery{containerID: containerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetContainerItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetContainerItemsQueryIsNotConstructed)
}

func (q GetContainerItemsQuery) ContainerID() uint64 {
	return q.containerID
}

// ItemRefResponse points at an item held by a courier registry.
type ItemRefResponse struct {
	OriginRegistry kernel.Address
	OriginItemID   uint64
}

// GetContainerCheckpointsQuery retrieves a container's audit trail.
type GetContainerCheckpointsQuery struct {
	containerID uint64

	guard guard.ConstructorGuard
}

func NewGetContainerCheckpointsQuery(containerID uint64) (GetContainerCheckpointsQuery, error) {
	if err := validateQueryID("container id", containerID); err != nil {
		return GetContainerCheckpointsQuery{}, err
	}
	return GetContainerCheckpointsQuery{containerID: containerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetContainerCheckpointsQuery) Validate() error {
	return q.guard.Validate(ErrGetContainerCheckpointsQueryIsNotConstructed)
}

func (q GetContainerCheckpointsQuery) ContainerID() uint64 {
	return q.containerID
}
