package cmd

import (
	"errors"

	http_adapter "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/registryclient"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrRegistryAddressesCollide = errors.New("courier and container registries must have different addresses")

// CompositionRoot wires the registries hosted by this node: one courier item registry
// and one container registry sharing a database.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	courierAddress   kernel.Address
	containerAddress kernel.Address
	directory        *registryclient.Directory
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	courierAddress, err := kernel.NewAddress(cfg.Registries.CourierAddress)
	if err != nil {
		return nil, err
	}
	containerAddress, err := kernel.NewAddress(cfg.Registries.ContainerAddress)
	if err != nil {
		return nil, err
	}
	if courierAddress.IsEqual(containerAddress) {
		return nil, ErrRegistryAddressesCollide
	}

	directory, err := registryclient.ParseDirectory(cfg.Registries.Directory, cfg.Registries.HandoffTimeout, logger)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:              cfg,
		gormDB:           gormDB,
		uowFactory:       postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:           logger,
		courierAddress:   courierAddress,
		containerAddress: containerAddress,
		directory:        directory,
	}

	// The local container registry is reached in-process, even when the directory lists it.
	directory.Register(containerAddress, registryclient.NewLocalClient(c.CreateEnqueuePendingItemCommandHandler()))

	return c, nil
}

func (c *CompositionRoot) CourierAddress() kernel.Address {
	return c.courierAddress
}

func (c *CompositionRoot) ContainerAddress() kernel.Address {
	return c.containerAddress
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) containerUoWFactory() commands.ContainerUoWFactory {
	return FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

// Courier registry

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.courierUoWFactory(), c.courierAddress)
}

func (c *CompositionRoot) CreateForwardItemCommandHandler() commands.ForwardItemCommandHandler {
	return commands.NewForwardItemCommandHandler(c.courierUoWFactory(), c.directory, c.courierAddress)
}

func (c *CompositionRoot) CreateAddItemCheckpointCommandHandler() commands.AddItemCheckpointCommandHandler {
	return commands.NewAddItemCheckpointCommandHandler(c.courierUoWFactory(), c.courierAddress)
}

func (c *CompositionRoot) CreateCompleteItemShipmentCommandHandler() commands.CompleteItemShipmentCommandHandler {
	return commands.NewCompleteItemShipmentCommandHandler(c.courierUoWFactory(), c.courierAddress)
}

func (c *CompositionRoot) CreateSetItemAsMissingCommandHandler() commands.SetItemAsMissingCommandHandler {
	return commands.NewSetItemAsMissingCommandHandler(c.courierUoWFactory(), c.courierAddress)
}

func (c *CompositionRoot) CreateGetItemQueryHandler() queries.GetItemQueryHandler {
	return queries.NewGetItemQueryHandler(c.gormDB, c.courierAddress)
}

func (c *CompositionRoot) CreateGetItemStatusQueryHandler() queries.GetItemStatusQueryHandler {
	return queries.NewGetItemStatusQueryHandler(c.gormDB, c.courierAddress)
}

func (c *CompositionRoot) CreateGetItemCheckpointsQueryHandler() queries.GetItemCheckpointsQueryHandler {
	return queries.NewGetItemCheckpointsQueryHandler(c.gormDB, c.courierAddress)
}

func (c *CompositionRoot) CreateGetTotalItemsQueryHandler() queries.GetTotalItemsQueryHandler {
	return queries.NewGetTotalItemsQueryHandler(c.gormDB, c.courierAddress)
}

// Container registry

func (c *CompositionRoot) CreateCreateContainerCommandHandler() commands.CreateContainerCommandHandler {
	return commands.NewCreateContainerCommandHandler(c.containerUoWFactory(), c.containerAddress)
}

func (c *CompositionRoot) CreateInitContainerShipmentCommandHandler() commands.InitContainerShipmentCommandHandler {
	return commands.NewInitContainerShipmentCommandHandler(c.containerUoWFactory(), c.containerAddress)
}

func (c *CompositionRoot) CreateCompleteContainerShipmentCommandHandler() commands.CompleteContainerShipmentCommandHandler {
	return commands.NewCompleteContainerShipmentCommandHandler(c.containerUoWFactory(), c.containerAddress)
}

func (c *CompositionRoot) CreateEnqueuePendingItemCommandHandler() commands.EnqueuePendingItemCommandHandler {
	return commands.NewEnqueuePendingItemCommandHandler(c.containerUoWFactory(), c.containerAddress)
}

func (c *CompositionRoot) CreateGetContainerQueryHandler() queries.GetContainerQueryHandler {
	return queries.NewGetContainerQueryHandler(c.gormDB, c.containerAddress)
}

func (c *CompositionRoot) CreateGetPendingItemsQueryHandler() queries.GetPendingItemsQueryHandler {
	return queries.NewGetPendingItemsQueryHandler(c.gormDB, c.containerAddress)
}

func (c *CompositionRoot) CreateGetTotalContainersQueryHandler() queries.GetTotalContainersQueryHandler {
	return queries.NewGetTotalContainersQueryHandler(c.gormDB, c.containerAddress)
}

// Escrow and outbox

func (c *CompositionRoot) CreateGetBalanceQueryHandler() queries.GetBalanceQueryHandler {
	return queries.NewGetBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePublishOutboxEventsCommandHandler(
	publisher ports.EventPublisher,
) commands.PublishOutboxEventsCommandHandler {
	return commands.NewPublishOutboxEventsCommandHandler(c.outboxUoWFactory(), publisher)
}

// CreateUseCases collects every handler served over HTTP.
func (c *CompositionRoot) CreateUseCases() http_adapter.UseCases {
	return http_adapter.UseCases{
		CreateItem:           c.CreateCreateItemCommandHandler(),
		ForwardItem:          c.CreateForwardItemCommandHandler(),
		AddItemCheckpoint:    c.CreateAddItemCheckpointCommandHandler(),
		CompleteItemShipment: c.CreateCompleteItemShipmentCommandHandler(),
		SetItemAsMissing:     c.CreateSetItemAsMissingCommandHandler(),
		GetItem:              c.CreateGetItemQueryHandler(),
		GetItemStatus:        c.CreateGetItemStatusQueryHandler(),
		GetItemCheckpoints:   c.CreateGetItemCheckpointsQueryHandler(),
		GetTotalItems:        c.CreateGetTotalItemsQueryHandler(),

		CreateContainer:           c.CreateCreateContainerCommandHandler(),
		InitContainerShipment:     c.CreateInitContainerShipmentCommandHandler(),
		CompleteContainerShipment: c.CreateCompleteContainerShipmentCommandHandler(),
		EnqueuePendingItem:        c.CreateEnqueuePendingItemCommandHandler(),
		GetContainer:              c.CreateGetContainerQueryHandler(),
		GetPendingItems:           c.CreateGetPendingItemsQueryHandler(),
		GetTotalContainers:        c.CreateGetTotalContainersQueryHandler(),

		GetBalance: c.CreateGetBalanceQueryHandler(),
	}
}

// CreateJobManager schedules the pending backlog report, and the outbox relay when a
// publisher is configured.
func (c *CompositionRoot) CreateJobManager(publisher ports.EventPublisher) (*jobs.JobManager, error) {
	backlog := jobs.NewPendingBacklogJob(c.CreateGetPendingItemsQueryHandler(), c.logger)

	if publisher == nil {
		return jobs.NewJobManager(backlog), nil
	}

	relay, err := jobs.NewOutboxRelayJob(
		c.CreatePublishOutboxEventsCommandHandler(publisher),
		c.cfg.Kafka.OutboxBatchSize,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(relay, backlog), nil
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncContainerUoWFactory func() commands.ContainerUoW

func (f FuncContainerUoWFactory) Create() commands.ContainerUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
