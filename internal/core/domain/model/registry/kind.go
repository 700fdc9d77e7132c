package registry

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Kind distinguishes the two registry roles. An address is bound to one kind forever.
type Kind int

const (
	// Courier registries own items.
	Courier Kind = iota + 1

	// Container registries own containers and the pending queue.
	Container
)

func (k Kind) String() string {
	switch k {
	case Courier:
		return "Courier"
	case Container:
		return "Container"
	default:
		return "Unknown"
	}
}

// Validate rejects undefined kinds.
func (k Kind) Validate() error {
	if k != Courier && k != Container {
		return errs.NewValueIsInvalidErrorWithCause("registry kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}
