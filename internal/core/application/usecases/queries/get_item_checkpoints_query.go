package queries

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var (
	ErrGetItemCheckpointsQueryIsNotConstructed = errors.New(
		"GetItemCheckpointsQuery must be created via NewGetItemCheckpointsQuery constructor",
	)
)

// GetItemCheckpointsQuery retrieves the full audit trail of an item in recording order.
type GetItemCheckpointsQuery struct {
	itemID uint64

	guard guard.ConstructorGuard
}

func NewGetItemCheckpointsQuery(itemID uint64) (GetItemCheckpointsQuery, error) {
	if err := validateQueryID("item id", itemID); err != nil {
		return GetItemCheckpointsQuery{}, err
	}
	return GetItemCheckpointsQuery{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetItemCheckpointsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemCheckpointsQueryIsNotConstructed)
}

func (q GetItemCheckpointsQuery) ItemID() uint64 {
	return q.itemID
}
