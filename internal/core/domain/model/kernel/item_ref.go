package kernel

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// ItemRef points at an item held by some courier registry. It is a plain value:
// container registries record it but never dereference it.
type ItemRef struct {
	origin Address
	itemID uint64
}

// NewItemRef validates that both parts are set.
func NewItemRef(origin Address, itemID uint64) (ItemRef, error) {
	if err := origin.Validate(); err != nil {
		return ItemRef{}, errs.NewValueIsRequiredErrorWithCause("origin registry address", err)
	}
	if itemID == 0 {
		return ItemRef{}, errs.NewValueIsRequiredError("origin item id")
	}
	return ItemRef{origin: origin, itemID: itemID}, nil
}

// Origin returns the courier registry that holds the item.
func (r ItemRef) Origin() Address {
	return r.origin
}

// ItemID returns the item's id within its origin registry.
func (r ItemRef) ItemID() uint64 {
	return r.itemID
}

func (r ItemRef) IsEqual(other ItemRef) bool {
	return r.origin.IsEqual(other.origin) && r.itemID == other.itemID
}

func (r ItemRef) String() string {
	return fmt.Sprintf("%s/%d", r.origin.Hex(), r.itemID)
}
