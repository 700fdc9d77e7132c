package commands_test

import (
	"context"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/container"
	"tracking/internal/core/domain/model/item"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/registry"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	courierRegistry   = kernel.MustNewAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	containerRegistry = kernel.MustNewAddress("0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2")
	receiver          = kernel.MustNewAddress("0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db")
	payee             = kernel.MustNewAddress("0x78731D3Ca6b7E34aC0F824c42a7cC18A495cabaB")
)

// Mock implementations for testing.
type MockRegistryRepository struct {
	mock.Mock
}

func (m *MockRegistryRepository) Acquire(
	ctx context.Context,
	address kernel.Address,
	kind registry.Kind,
) (*registry.Registry, error) {
	args := m.Called(ctx, address, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.Registry), args.Error(1)
}

func (m *MockRegistryRepository) Update(ctx context.Context, aggregate *registry.Registry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, registry kernel.Address, id uint64) (*item.Item, error) {
	args := m.Called(ctx, registry, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

type MockContainerRepository struct {
	mock.Mock
}

func (m *MockContainerRepository) Add(ctx context.Context, aggregate *container.Container) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockContainerRepository) Update(ctx context.Context, aggregate *container.Container) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockContainerRepository) Get(
	ctx context.Context,
	registry kernel.Address,
	id uint64,
) (*container.Container, error) {
	args := m.Called(ctx, registry, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*container.Container), args.Error(1)
}

type MockPendingQueueRepository struct {
	mock.Mock
}

func (m *MockPendingQueueRepository) Enqueue(
	ctx context.Context,
	registry kernel.Address,
	destination kernel.Destination,
	ref kernel.ItemRef,
) error {
	args := m.Called(ctx, registry, destination, ref)
	return args.Error(0)
}

func (m *MockPendingQueueRepository) Drain(
	ctx context.Context,
	registry kernel.Address,
	destination kernel.Destination,
) ([]services.PendingItem, error) {
	args := m.Called(ctx, registry, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.PendingItem), args.Error(1)
}

type MockEscrowLedger struct {
	mock.Mock
}

func (m *MockEscrowLedger) Release(ctx context.Context, payee kernel.Address, amount int64, ref kernel.ItemRef) error {
	args := m.Called(ctx, payee, amount, ref)
	return args.Error(0)
}

type MockOutboxRepository struct {
	mock.Mock
}

func (m *MockOutboxRepository) Add(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

type MockContainerRegistryClient struct {
	mock.Mock
}

func (m *MockContainerRegistryClient) EnqueuePendingItem(
	ctx context.Context,
	destination kernel.Destination,
	ref kernel.ItemRef,
) error {
	args := m.Called(ctx, destination, ref)
	return args.Error(0)
}

type MockRegistryDirectory struct {
	mock.Mock
}

func (m *MockRegistryDirectory) Resolve(address kernel.Address) (ports.ContainerRegistryClient, error) {
	args := m.Called(address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.ContainerRegistryClient), args.Error(1)
}

type mockTx struct {
	mock.Mock
}

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCourierUoW struct {
	mockTx
}

func (m *MockCourierUoW) RegistryRepository() ports.RegistryRepository {
	args := m.Called()
	return args.Get(0).(ports.RegistryRepository)
}

func (m *MockCourierUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockCourierUoW) EscrowLedger() ports.EscrowLedger {
	args := m.Called()
	return args.Get(0).(ports.EscrowLedger)
}

type MockCourierUoWFactory struct {
	mock.Mock
}

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

type MockContainerUoW struct {
	mockTx
}

func (m *MockContainerUoW) RegistryRepository() ports.RegistryRepository {
	args := m.Called()
	return args.Get(0).(ports.RegistryRepository)
}

func (m *MockContainerUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

func (m *MockContainerUoW) PendingQueueRepository() ports.PendingQueueRepository {
	args := m.Called()
	return args.Get(0).(ports.PendingQueueRepository)
}

type MockContainerUoWFactory struct {
	mock.Mock
}

func (m *MockContainerUoWFactory) Create() commands.ContainerUoW {
	args := m.Called()
	return args.Get(0).(commands.ContainerUoW)
}

type MockOutboxUoW struct {
	mockTx
}

func (m *MockOutboxUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockOutboxUoWFactory struct {
	mock.Mock
}

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

func mustCourierRegistry(lastID uint64) *registry.Registry {
	reg, err := registry.RestoreRegistry(courierRegistry, registry.Courier, lastID)
	if err != nil {
		panic(err)
	}
	return reg
}

func mustContainerRegistry(lastID uint64) *registry.Registry {
	reg, err := registry.RestoreRegistry(containerRegistry, registry.Container, lastID)
	if err != nil {
		panic(err)
	}
	return reg
}

func mustItem(id uint64, status item.Status) *item.Item {
	it, err := item.RestoreItem(
		courierRegistry,
		id,
		1,
		kernel.MustNewDestination("MY"),
		receiver,
		"Penang",
		payee,
		10000,
		status,
		nil,
	)
	if err != nil {
		panic(err)
	}
	return it
}

func mustContainer(id uint64, status container.Status) *container.Container {
	ref, err := kernel.NewItemRef(courierRegistry, 1)
	if err != nil {
		panic(err)
	}
	c, err := container.RestoreContainer(
		containerRegistry,
		id,
		1,
		kernel.MustNewDestination("MY"),
		receiver,
		"Port Klang",
		status,
		[]kernel.ItemRef{ref},
		nil,
	)
	if err != nil {
		panic(err)
	}
	return c
}

type courierFixture struct {
	uow      *MockCourierUoW
	factory  *MockCourierUoWFactory
	regRepo  *MockRegistryRepository
	itemRepo *MockItemRepository
	ledger   *MockEscrowLedger
}

func newCourierFixture() courierFixture {
	return courierFixture{
		uow:      new(MockCourierUoW),
		factory:  new(MockCourierUoWFactory),
		regRepo:  new(MockRegistryRepository),
		itemRepo: new(MockItemRepository),
		ledger:   new(MockEscrowLedger),
	}
}

// expectLoad sets up the calls every courier handler makes before mutating it.
func (f courierFixture) expectLoad(ctx context.Context, it *item.Item) {
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("ItemRepository").Return(f.itemRepo).Once()
	f.uow.On("RegistryRepository").Return(f.regRepo).Once()
	f.uow.On("EscrowLedger").Return(f.ledger).Maybe()
	f.regRepo.On("Acquire", ctx, courierRegistry, registry.Courier).Return(mustCourierRegistry(it.ID()), nil).Once()
	f.itemRepo.On("Get", ctx, courierRegistry, it.ID()).Return(it, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

type containerFixture struct {
	uow           *MockContainerUoW
	factory       *MockContainerUoWFactory
	regRepo       *MockRegistryRepository
	containerRepo *MockContainerRepository
	pendingRepo   *MockPendingQueueRepository
}

func newContainerFixture() containerFixture {
	return containerFixture{
		uow:           new(MockContainerUoW),
		factory:       new(MockContainerUoWFactory),
		regRepo:       new(MockRegistryRepository),
		containerRepo: new(MockContainerRepository),
		pendingRepo:   new(MockPendingQueueRepository),
	}
}

func (f containerFixture) expectBegin(ctx context.Context) {
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("RegistryRepository").Return(f.regRepo).Once()
	f.uow.On("ContainerRepository").Return(f.containerRepo).Maybe()
	f.uow.On("PendingQueueRepository").Return(f.pendingRepo).Maybe()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}
