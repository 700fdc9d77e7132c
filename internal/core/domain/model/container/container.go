package container

import (
	"errors"
	"fmt"
	"strconv"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrContainerIsNotConstructed is returned when a Container instance was not created
	// through NewContainer or RestoreContainer.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer or RestoreContainer constructor")
)

// Container is a bulk shipment owned by a container registry. It carries the items
// that were pending for its destination when it was created.
//
// Container follows these invariants:
//   - Items are fixed at creation and kept in enqueue order
//   - Status moves Processing -> Ongoing -> Completed only
//   - Checkpoints are append-only
type Container struct {
	registry     kernel.Address
	id           uint64
	shipmentType kernel.ShipmentType
	destination  kernel.Destination
	receiver     kernel.Address
	locationName string
	status       Status
	items        []kernel.ItemRef
	checkpoints  []kernel.Checkpoint
	events       []kernel.DomainEvent

	isConstructed bool
}

// NewContainer creates a container in Processing status loaded with items.
// items is typically the drained pending queue for destination and may be empty.
//
// Example:
//
//	refs, _ := pendingQueue.Drain(ctx, registry, destination)
//	c, err := NewContainer(registry, 1, 0, destination, receiver, "Port Klang", refs)
func NewContainer(
	registry kernel.Address,
	id uint64,
	shipmentType kernel.ShipmentType,
	destination kernel.Destination,
	receiver kernel.Address,
	locationName string,
	items []kernel.ItemRef,
) (*Container, error) {
	c := &Container{
		shipmentType:  shipmentType,
		locationName:  locationName,
		status:        Processing,
		checkpoints:   make([]kernel.Checkpoint, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setRegistry(registry),
		c.setID(id),
		c.setDestination(destination),
		c.setReceiver(receiver),
		c.setItems(items),
	); err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(c.items))
	for _, ref := range c.items {
		refs = append(refs, ref.String())
	}
	c.raise(EventCreated, map[string]any{
		"shipmentType": int(shipmentType),
		"destination":  destination.String(),
		"receiver":     receiver.String(),
		"locationName": locationName,
		"items":        refs,
	})
	return c, nil
}

// RestoreContainer rebuilds a container from storage without raising events.
func RestoreContainer(
	registry kernel.Address,
	id uint64,
	shipmentType kernel.ShipmentType,
	destination kernel.Destination,
	receiver kernel.Address,
	locationName string,
	status Status,
	items []kernel.ItemRef,
	checkpoints []kernel.Checkpoint,
) (*Container, error) {
	c := &Container{
		shipmentType:  shipmentType,
		locationName:  locationName,
		checkpoints:   append(make([]kernel.Checkpoint, 0, len(checkpoints)), checkpoints...),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setRegistry(registry),
		c.setID(id),
		c.setDestination(destination),
		c.setReceiver(receiver),
		c.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	c.status = status
	return c, nil
}

// Validate ensures the Container instance was properly constructed.
func (c *Container) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContainerIsNotConstructed
	}
	return nil
}

func (c *Container) Registry() kernel.Address {
	return c.registry
}

func (c *Container) ID() uint64 {
	return c.id
}

func (c *Container) ShipmentType() kernel.ShipmentType {
	return c.shipmentType
}

func (c *Container) Destination() kernel.Destination {
	return c.destination
}

func (c *Container) Receiver() kernel.Address {
	return c.receiver
}

func (c *Container) LocationName() string {
	return c.locationName
}

func (c *Container) Status() Status {
	return c.status
}

// Items returns a copy of the loaded item references in enqueue order.
func (c *Container) Items() []kernel.ItemRef {
	return append(make([]kernel.ItemRef, 0, len(c.items)), c.items...)
}

// Checkpoints returns a copy of the audit trail in append order.
func (c *Container) Checkpoints() []kernel.Checkpoint {
	return append(make([]kernel.Checkpoint, 0, len(c.checkpoints)), c.checkpoints...)
}

func (c *Container) CheckpointCount() int {
	return len(c.checkpoints)
}

func (c *Container) DomainEvents() []kernel.DomainEvent {
	return c.events
}

func (c *Container) ClearDomainEvents() {
	c.events = nil
}

// InitShipment starts the bulk shipment and appends checkpoint.
// Only a Processing container can be initiated.
func (c *Container) InitShipment(checkpoint kernel.Checkpoint) error {
	if err := checkpoint.Validate(); err != nil {
		return err
	}

	newStatus, err := c.status.InitShipment()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.checkpoints = append(c.checkpoints, checkpoint)
	c.raise(EventShipmentInitiated, map[string]any{
		"statusLabel": checkpoint.StatusLabel(),
		"location":    checkpoint.Location(),
	})
	return nil
}

// Complete ends the bulk shipment and appends checkpoint.
// Only an Ongoing container can be completed.
func (c *Container) Complete(checkpoint kernel.Checkpoint) error {
	if err := checkpoint.Validate(); err != nil {
		return err
	}

	newStatus, err := c.status.Complete()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.checkpoints = append(c.checkpoints, checkpoint)
	c.raise(EventShipmentCompleted, map[string]any{
		"statusLabel": checkpoint.StatusLabel(),
		"location":    checkpoint.Location(),
	})
	return nil
}

// AggregateID renders the registry-qualified identifier used in events.
func (c *Container) AggregateID() string {
	return c.registry.Hex() + "/" + strconv.FormatUint(c.id, 10)
}

func (c *Container) raise(name string, payload map[string]any) {
	payload["registry"] = c.registry.String()
	payload["containerId"] = c.id
	c.events = append(c.events, kernel.NewDomainEvent(name, aggregateType, c.AggregateID(), payload))
}

func (c *Container) setRegistry(registry kernel.Address) error {
	if err := registry.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("registry", err)
	}
	c.registry = registry
	return nil
}

func (c *Container) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Container) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *Container) setReceiver(receiver kernel.Address) error {
	if err := receiver.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiver", err)
	}
	c.receiver = receiver
	return nil
}

func (c *Container) setItems(items []kernel.ItemRef) error {
	for idx, ref := range items {
		if ref.ItemID() == 0 || ref.Origin().IsZero() {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item reference %d is empty", idx))
		}
	}
	c.items = append(make([]kernel.ItemRef, 0, len(items)), items...)
	return nil
}
