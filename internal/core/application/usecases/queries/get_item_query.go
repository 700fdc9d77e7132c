package queries

import (
	"errors"

	"tracking/internal/core/domain/model/item"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetItemQueryIsNotConstructed = errors.New(
		"GetItemQuery must be created via NewGetItemQuery constructor",
	)
)

// GetItemQuery retrieves the snapshot of one item of the local courier registry.
//
// Example:
//
//	query, err := NewGetItemQuery(1)
//	handler := NewGetItemQueryHandler(db, courierRegistryAddress)
//
//	it, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve item: %w", err)
//	}
//	fmt.Printf("item %d is %s with %d checkpoints\n", it.ID, it.Status, it.CheckpointCount)
type GetItemQuery struct {
	itemID uint64

	guard guard.ConstructorGuard
}

// NewGetItemQuery creates a query for the item with the given id.
func NewGetItemQuery(itemID uint64) (GetItemQuery, error) {
	if err := validateQueryID("item id", itemID); err != nil {
		return GetItemQuery{}, err
	}
	return GetItemQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

func (q GetItemQuery) ItemID() uint64 {
	return q.itemID
}

// GetItemQueryResponse is the item read model.
type GetItemQueryResponse struct {
	ID               uint64
	Registry         kernel.Address
	ShipmentType     kernel.ShipmentType
	Destination      kernel.Destination
	Receiver         kernel.Address
	ReceiverLocation string
	Payee            kernel.Address
	Price            int64
	Status           item.Status
	CheckpointCount  int
}
