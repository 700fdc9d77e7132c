package item

import (
	"errors"
	"fmt"
	"strconv"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created through
	// the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
)

// Item represents a single parcel held by a courier registry. It is the aggregate root
// for the parcel lifecycle from creation, through handoff to container registries,
// to payment-gated completion.
//
// Item follows these invariants:
//   - The (registry, id) pair is unique and never reused
//   - Price is positive and immutable after creation
//   - Status transitions follow the Status state machine
//   - Checkpoints are append-only; every successful mutating call appends exactly one
//   - Nothing changes when a mutating call fails
type Item struct {
	// registry is the courier registry that owns the item
	registry kernel.Address

	// id is the registry-local identifier, starting at 1
	id uint64

	shipmentType     kernel.ShipmentType
	destination      kernel.Destination
	receiver         kernel.Address
	receiverLocation string

	// payee receives the escrowed payment on completion
	payee kernel.Address

	// price is the amount that completion must pay exactly
	price int64

	status      Status
	checkpoints []kernel.Checkpoint

	// events collects domain events until the unit of work stores them
	events []kernel.DomainEvent

	isConstructed bool
}

// NewItem creates an item in Processing status with an empty audit trail.
//
// Parameters:
//   - registry: the owning courier registry
//   - id: the identifier allocated by the registry (must be positive)
//   - shipmentType, destination: opaque shipment attributes
//   - receiver, receiverLocation: who and where the item is delivered to
//   - payee: account credited on completion
//   - price: the exact payment completion requires (must be positive)
//
// Example:
//
//	it, err := NewItem(registry, 1, 0, kernel.MustNewDestination("MY"), receiver, "Penang", payee, 10000)
//	if err != nil {
//	    // Handle validation error
//	}
func NewItem(
	registry kernel.Address,
	id uint64,
	shipmentType kernel.ShipmentType,
	destination kernel.Destination,
	receiver kernel.Address,
	receiverLocation string,
	payee kernel.Address,
	price int64,
) (*Item, error) {
	it := &Item{
		shipmentType:     shipmentType,
		receiverLocation: receiverLocation,
		status:           Processing,
		checkpoints:      make([]kernel.Checkpoint, 0),
		isConstructed:    true,
	}

	if err := errors.Join(
		it.setRegistry(registry),
		it.setID(id),
		it.setDestination(destination),
		it.setReceiver(receiver),
		it.setPayee(payee),
		it.setPrice(price),
	); err != nil {
		return nil, err
	}

	it.raise(EventCreated, map[string]any{
		"shipmentType": int(shipmentType),
		"destination":  destination.String(),
		"receiver":     receiver.String(),
		"payee":        payee.String(),
		"price":        price,
	})
	return it, nil
}

// RestoreItem rebuilds an item from storage. It validates the same invariants as NewItem
// plus the stored status, and raises no events.
func RestoreItem(
	registry kernel.Address,
	id uint64,
	shipmentType kernel.ShipmentType,
	destination kernel.Destination,
	receiver kernel.Address,
	receiverLocation string,
	payee kernel.Address,
	price int64,
	status Status,
	checkpoints []kernel.Checkpoint,
) (*Item, error) {
	it := &Item{
		shipmentType:     shipmentType,
		receiverLocation: receiverLocation,
		checkpoints:      append(make([]kernel.Checkpoint, 0, len(checkpoints)), checkpoints...),
		isConstructed:    true,
	}

	if err := errors.Join(
		it.setRegistry(registry),
		it.setID(id),
		it.setDestination(destination),
		it.setReceiver(receiver),
		it.setPayee(payee),
		it.setPrice(price),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	it.status = status
	return it, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Registry returns the owning courier registry.
func (i *Item) Registry() kernel.Address {
	return i.registry
}

// ID returns the registry-local identifier.
func (i *Item) ID() uint64 {
	return i.id
}

// Ref returns the reference container registries record for this item.
func (i *Item) Ref() kernel.ItemRef {
	ref, _ := kernel.NewItemRef(i.registry, i.id)
	return ref
}

func (i *Item) ShipmentType() kernel.ShipmentType {
	return i.shipmentType
}

func (i *Item) Destination() kernel.Destination {
	return i.destination
}

func (i *Item) Receiver() kernel.Address {
	return i.receiver
}

func (i *Item) ReceiverLocation() string {
	return i.receiverLocation
}

func (i *Item) Payee() kernel.Address {
	return i.payee
}

func (i *Item) Price() int64 {
	return i.price
}

func (i *Item) Status() Status {
	return i.status
}

// Checkpoints returns a copy of the audit trail in append order.
func (i *Item) Checkpoints() []kernel.Checkpoint {
	return append(make([]kernel.Checkpoint, 0, len(i.checkpoints)), i.checkpoints...)
}

// CheckpointCount returns the length of the audit trail.
func (i *Item) CheckpointCount() int {
	return len(i.checkpoints)
}

// DomainEvents returns the events raised since the item was loaded.
func (i *Item) DomainEvents() []kernel.DomainEvent {
	return i.events
}

// ClearDomainEvents drops collected events once they are stored.
func (i *Item) ClearDomainEvents() {
	i.events = nil
}

// Forward records the handoff of the item to a container registry.
//
// This method enforces the following business rules:
//   - The target registry and the batching destination must be valid
//   - The item must be Processing or Ongoing
//   - The checkpoint is appended and the status becomes Ongoing
//
// The caller is responsible for the enqueue call on the target registry and
// must discard the item if that call fails.
//
// Example:
//
//	cp, _ := kernel.NewCheckpoint("Forwarded to container", "", target, "Port Klang", time.Now())
//	if err := it.Forward(target, kernel.MustNewDestination("MY"), cp); err != nil {
//	    // Handle invalid state or input
//	}
func (i *Item) Forward(target kernel.Address, destination kernel.Destination, checkpoint kernel.Checkpoint) error {
	if err := errors.Join(
		target.Validate(),
		destination.Validate(),
		checkpoint.Validate(),
	); err != nil {
		return err
	}

	newStatus, err := i.status.Forward()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.checkpoints = append(i.checkpoints, checkpoint)
	i.raise(EventForwarded, map[string]any{
		"targetRegistry": target.String(),
		"destination":    destination.String(),
		"statusLabel":    checkpoint.StatusLabel(),
		"location":       checkpoint.Location(),
	})
	return nil
}

// AddCheckpoint appends an audit entry without changing the status.
// Allowed in any non-terminal status.
func (i *Item) AddCheckpoint(checkpoint kernel.Checkpoint) error {
	if err := checkpoint.Validate(); err != nil {
		return err
	}

	if err := i.status.ValidateCheckpoint(); err != nil {
		return err
	}

	i.checkpoints = append(i.checkpoints, checkpoint)
	i.raise(EventCheckpointAdded, map[string]any{
		"statusLabel": checkpoint.StatusLabel(),
		"handler":     checkpoint.Handler().String(),
		"location":    checkpoint.Location(),
	})
	return nil
}

// Complete confirms delivery against the exact payment.
//
// This method enforces the following business rules:
//   - The item must be Ongoing
//   - payment must equal the price exactly, otherwise PaymentMismatchError
//   - On success the checkpoint is appended and the status becomes Completed
//
// The caller releases payment to Payee() in the same transaction.
func (i *Item) Complete(checkpoint kernel.Checkpoint, payment int64) error {
	if err := checkpoint.Validate(); err != nil {
		return err
	}

	newStatus, err := i.status.Complete()
	if err != nil {
		return err
	}

	if payment != i.price {
		return errs.NewPaymentMismatchError(i.price, payment)
	}

	i.status = newStatus
	i.checkpoints = append(i.checkpoints, checkpoint)
	i.raise(EventCompleted, map[string]any{
		"payee":       i.payee.String(),
		"amount":      payment,
		"statusLabel": checkpoint.StatusLabel(),
		"location":    checkpoint.Location(),
	})
	return nil
}

// MarkMissing records the item as lost. Allowed from Processing or Ongoing.
func (i *Item) MarkMissing(checkpoint kernel.Checkpoint) error {
	if err := checkpoint.Validate(); err != nil {
		return err
	}

	newStatus, err := i.status.MarkMissing()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.checkpoints = append(i.checkpoints, checkpoint)
	i.raise(EventMarkedMissing, map[string]any{
		"statusLabel": checkpoint.StatusLabel(),
	})
	return nil
}

// AggregateID renders the registry-qualified identifier used in events.
func (i *Item) AggregateID() string {
	return i.registry.Hex() + "/" + strconv.FormatUint(i.id, 10)
}

func (i *Item) raise(name string, payload map[string]any) {
	payload["registry"] = i.registry.String()
	payload["itemId"] = i.id
	i.events = append(i.events, kernel.NewDomainEvent(name, aggregateType, i.AggregateID(), payload))
}

func (i *Item) setRegistry(registry kernel.Address) error {
	if err := registry.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("registry", err)
	}
	i.registry = registry
	return nil
}

func (i *Item) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	i.destination = destination
	return nil
}

func (i *Item) setReceiver(receiver kernel.Address) error {
	if err := receiver.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiver", err)
	}
	i.receiver = receiver
	return nil
}

func (i *Item) setPayee(payee kernel.Address) error {
	if err := payee.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("payee", err)
	}
	i.payee = payee
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is not greater than 0", price))
	}
	i.price = price
	return nil
}
