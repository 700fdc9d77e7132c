// Package commands contains business operations that modify registry state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// registry acquisition, domain mutation and persistence.
package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RegistryRepoFactory provides access to registry identities within a transaction.
	RegistryRepoFactory interface {
		RegistryRepository() ports.RegistryRepository
	}

	// ItemRepoFactory provides access to item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// ContainerRepoFactory provides access to container repository within a transaction.
	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	// PendingQueueRepoFactory provides access to the pending queue within a transaction.
	PendingQueueRepoFactory interface {
		PendingQueueRepository() ports.PendingQueueRepository
	}

	// EscrowLedgerFactory provides access to the escrow ledger within a transaction.
	EscrowLedgerFactory interface {
		EscrowLedger() ports.EscrowLedger
	}

	// OutboxRepoFactory provides access to the event outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// CourierUoW manages transactions for courier registry operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   reg, err := uow.RegistryRepository().Acquire(ctx, address, registry.Courier)
	//   it, err := uow.ItemRepository().Get(ctx, address, id)
	//   // ... mutate and persist
	//
	//   err = uow.Commit(ctx)
	CourierUoW interface {
		TxManager
		RegistryRepoFactory
		ItemRepoFactory
		EscrowLedgerFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// ContainerUoW manages transactions for container registry operations,
	// including the pending queue.
	ContainerUoW interface {
		TxManager
		RegistryRepoFactory
		ContainerRepoFactory
		PendingQueueRepoFactory
	}

	// ContainerUoWFactory creates new container unit of work instances.
	ContainerUoWFactory interface {
		Create() ContainerUoW
	}

	// OutboxUoW manages transactions for the event relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
