package registry

import (
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

const (
	aggregateType = "registry"

	EventPendingItemEnqueued = "registry.pending_item_enqueued"
)

var (
	ErrRegistryIsNotConstructed = errors.New("Registry must be created via NewRegistry or RestoreRegistry constructor")
)

// Registry is the identity and id counter of one registry instance.
//
// Every mutating operation of a registry acquires its Registry first. Acquisition locks
// the record, so operations on one registry apply one at a time in submission order,
// and ids are allocated without gaps or reuse.
type Registry struct {
	address kernel.Address
	kind    Kind
	lastID  uint64
	events  []kernel.DomainEvent

	isConstructed bool
}

// NewRegistry creates a registry that has allocated no ids yet.
func NewRegistry(address kernel.Address, kind Kind) (*Registry, error) {
	return RestoreRegistry(address, kind, 0)
}

// RestoreRegistry rebuilds a registry from storage.
func RestoreRegistry(address kernel.Address, kind Kind, lastID uint64) (*Registry, error) {
	if err := errors.Join(
		address.Validate(),
		kind.Validate(),
	); err != nil {
		return nil, err
	}

	return &Registry{
		address:       address,
		kind:          kind,
		lastID:        lastID,
		isConstructed: true,
	}, nil
}

func (r *Registry) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRegistryIsNotConstructed
	}
	return nil
}

func (r *Registry) Address() kernel.Address {
	return r.address
}

func (r *Registry) Kind() Kind {
	return r.kind
}

// LastID returns the most recently allocated id, or 0 if none was allocated.
// It equals the number of items or containers the registry holds.
func (r *Registry) LastID() uint64 {
	return r.lastID
}

// ExpectKind fails when the registry was acquired under the wrong role.
func (r *Registry) ExpectKind(kind Kind) error {
	if r.kind != kind {
		return errs.NewValueIsInvalidErrorWithCause(
			"registry kind",
			fmt.Errorf("%s is a %s registry, not a %s registry", r.address, r.kind, kind),
		)
	}
	return nil
}

// NextID allocates the next identifier. Identifiers start at 1.
func (r *Registry) NextID() uint64 {
	r.lastID++
	return r.lastID
}

// RecordPendingItem notes that ref was queued for destination. Only container
// registries hold a pending queue.
func (r *Registry) RecordPendingItem(destination kernel.Destination, ref kernel.ItemRef) error {
	if err := r.ExpectKind(Container); err != nil {
		return err
	}

	r.events = append(r.events, kernel.NewDomainEvent(
		EventPendingItemEnqueued,
		aggregateType,
		r.address.Hex(),
		map[string]any{
			"registry":              r.address.String(),
			"destination":           destination.String(),
			"originRegistryAddress": ref.Origin().String(),
			"originItemId":          ref.ItemID(),
		},
	))
	return nil
}

func (r *Registry) DomainEvents() []kernel.DomainEvent {
	return r.events
}

func (r *Registry) ClearDomainEvents() {
	r.events = nil
}
