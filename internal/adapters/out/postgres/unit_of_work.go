// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The unit of work keeps one database transaction open for a business operation and
// records which aggregates it touched.
//
// On Commit the domain events collected by the tracked aggregates are written to the
// outbox inside the same transaction, so a state change and its audit event are
// stored together or not at all.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	reg, err := uow.RegistryRepository().Acquire(ctx, address, registry.Courier)
//	if err != nil {
//	    return err
//	}
//	// ... mutate aggregates through the repositories
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Mutations of one registry are serialised by the registry row lock
package postgres

import (
	"context"

	"tracking/internal/adapters/out/postgres/containerrepo"
	"tracking/internal/adapters/out/postgres/itemrepo"
	"tracking/internal/adapters/out/postgres/ledgerrepo"
	"tracking/internal/adapters/out/postgres/outboxrepo"
	"tracking/internal/adapters/out/postgres/pendingrepo"
	"tracking/internal/adapters/out/postgres/registryrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

// eventSource is implemented by aggregates that collect domain events.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin twice on the same instance does not open a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending domain events of every tracked aggregate to the outbox
// and commits the transaction. On success the aggregates' event lists are cleared.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushEvents(ctx); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, tracked := range uow.trackedAggregates {
		if source, ok := tracked.Aggregate.(eventSource); ok {
			source.ClearDomainEvents()
		}
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active, which is the
// normal outcome of the deferred Rollback after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) RegistryRepository() ports.RegistryRepository {
	return registryrepo.NewGormRegistryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ItemRepository() ports.ItemRepository {
	return itemrepo.NewGormItemRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ContainerRepository() ports.ContainerRepository {
	return containerrepo.NewGormContainerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PendingQueueRepository() ports.PendingQueueRepository {
	return pendingrepo.NewGormPendingQueueRepository(uow.conn())
}

func (uow *GormUnitOfWork) EscrowLedger() ports.EscrowLedger {
	return ledgerrepo.NewGormEscrowLedger(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Repositories call it after a successful Add or Update. Tracking the same
// aggregate twice keeps one entry.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	for _, tracked := range uow.trackedAggregates {
		if tracked.Aggregate == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the active transaction, or the plain connection outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) flushEvents(ctx context.Context) error {
	events := make([]kernel.DomainEvent, 0)
	for _, tracked := range uow.trackedAggregates {
		if source, ok := tracked.Aggregate.(eventSource); ok {
			events = append(events, source.DomainEvents()...)
		}
	}

	if len(events) == 0 {
		return nil
	}
	return uow.OutboxRepository().Add(ctx, events...)
}
