// Package kernel provides the shared value objects of the tracking domain.
//
// The package includes:
//   - Address: an EIP-55 checksummed account identifier for registries, receivers and payees
//   - Destination: the country/region code that batches items into containers
//   - ShipmentType: an opaque, operator-defined category code
//   - Checkpoint: one immutable audit trail entry
//   - ItemRef: a reference to an item held by a courier registry
//   - UUID: identifiers for records without a natural key
//   - DomainEvent: a state change recorded by an aggregate
//
// All value objects are immutable and validated on construction; their zero
// values fail Validate.
package kernel
