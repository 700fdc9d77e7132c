package queries_test

import (
	"context"
	"testing"

	postgres_adapter "tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/pgtest"
	"tracking/internal/adapters/out/registryclient"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/container"
	"tracking/internal/core/domain/model/item"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var (
	courierAddress   = kernel.MustNewAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	containerAddress = kernel.MustNewAddress("0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2")
	receiverAddress  = kernel.MustNewAddress("0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db")
	payeeAddress     = kernel.MustNewAddress("0x78731D3Ca6b7E34aC0F824c42a7cC18A495cabaB")
)

type courierFactory struct{ f ports.UnitOfWorkFactory }

func (c courierFactory) Create() commands.CourierUoW { return c.f.Create() }

type containerFactory struct{ f ports.UnitOfWorkFactory }

func (c containerFactory) Create() commands.ContainerUoW { return c.f.Create() }

// QueriesIntegrationTestSuite seeds state through the command handlers and reads it back
// through the query handlers.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	pg *pgtest.Database
	db *gorm.DB

	createItem      commands.CreateItemCommandHandler
	forwardItem     commands.ForwardItemCommandHandler
	addCheckpoint   commands.AddItemCheckpointCommandHandler
	completeItem    commands.CompleteItemShipmentCommandHandler
	createContainer commands.CreateContainerCommandHandler
	initContainer   commands.InitContainerShipmentCommandHandler
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.db = pg.DB
	suite.Require().NoError(postgres_adapter.Migrate(suite.db))

	uowFactory := postgres_adapter.NewGormUnitOfWorkFactory(suite.db)
	couriers := courierFactory{f: uowFactory}
	containers := containerFactory{f: uowFactory}

	directory := registryclient.NewDirectory()
	directory.Register(containerAddress, registryclient.NewLocalClient(
		commands.NewEnqueuePendingItemCommandHandler(containers, containerAddress),
	))

	suite.createItem = commands.NewCreateItemCommandHandler(couriers, courierAddress)
	suite.forwardItem = commands.NewForwardItemCommandHandler(couriers, directory, courierAddress)
	suite.addCheckpoint = commands.NewAddItemCheckpointCommandHandler(couriers, courierAddress)
	suite.completeItem = commands.NewCompleteItemShipmentCommandHandler(couriers, courierAddress)
	suite.createContainer = commands.NewCreateContainerCommandHandler(containers, containerAddress)
	suite.initContainer = commands.NewInitContainerShipmentCommandHandler(containers, containerAddress)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + postgres_adapter.TableNames).Error)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) TestGetItem() {
	ctx := context.Background()
	id := suite.seedItem(ctx, "MY", 10000)

	query, err := queries.NewGetItemQuery(id)
	suite.Require().NoError(err)

	it, err := queries.NewGetItemQueryHandler(suite.db, courierAddress).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.EqualValues(1, it.ID)
	suite.True(it.Registry.IsEqual(courierAddress))
	suite.EqualValues(2, it.ShipmentType)
	suite.Equal("MY", it.Destination.String())
	suite.True(it.Receiver.IsEqual(receiverAddress))
	suite.Equal("Penang", it.ReceiverLocation)
	suite.True(it.Payee.IsEqual(payeeAddress))
	suite.EqualValues(10000, it.Price)
	suite.Equal(item.Processing, it.Status)
	suite.Zero(it.CheckpointCount)
}

func (suite *QueriesIntegrationTestSuite) TestGetItem_NotFound() {
	ctx := context.Background()
	suite.seedItem(ctx, "MY", 10000)

	query, err := queries.NewGetItemQuery(2)
	suite.Require().NoError(err)

	_, err = queries.NewGetItemQueryHandler(suite.db, courierAddress).Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// same id on another registry is a different item
	query, err = queries.NewGetItemQuery(1)
	suite.Require().NoError(err)
	_, err = queries.NewGetItemQueryHandler(suite.db, containerAddress).Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetItemStatusAndCheckpoints() {
	ctx := context.Background()
	id := suite.seedItem(ctx, "MY", 10000)
	suite.forward(ctx, id, "MY")

	cmd, err := commands.NewAddItemCheckpointCommand(id, "Arrived", "hub scan", receiverAddress.String(), "Port Klang")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.addCheckpoint.Handle(ctx, cmd))

	statusQuery, err := queries.NewGetItemStatusQuery(id)
	suite.Require().NoError(err)
	status, err := queries.NewGetItemStatusQueryHandler(suite.db, courierAddress).Handle(ctx, statusQuery)
	suite.Require().NoError(err)
	suite.Equal(item.Ongoing, status)

	cpQuery, err := queries.NewGetItemCheckpointsQuery(id)
	suite.Require().NoError(err)
	checkpoints, err := queries.NewGetItemCheckpointsQueryHandler(suite.db, courierAddress).Handle(ctx, cpQuery)
	suite.Require().NoError(err)

	suite.Require().Len(checkpoints, 2)
	suite.Equal("Forwarded", checkpoints[0].StatusLabel)
	suite.True(checkpoints[0].Handler.IsEqual(containerAddress))
	suite.Equal("Arrived", checkpoints[1].StatusLabel)
	suite.Equal("hub scan", checkpoints[1].Description)
	suite.True(checkpoints[1].Handler.IsEqual(receiverAddress))
	suite.Equal("Port Klang", checkpoints[1].Location)
	suite.False(checkpoints[1].RecordedAt.Before(checkpoints[0].RecordedAt))
}

func (suite *QueriesIntegrationTestSuite) TestGetItemCheckpoints_NotFound() {
	query, err := queries.NewGetItemCheckpointsQuery(9)
	suite.Require().NoError(err)

	_, err = queries.NewGetItemCheckpointsQueryHandler(suite.db, courierAddress).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestTotals() {
	ctx := context.Background()
	suite.assertTotals(ctx, 0, 0)

	suite.seedItem(ctx, "MY", 100)
	suite.seedItem(ctx, "SG", 200)
	suite.seedContainer(ctx, "MY")

	suite.assertTotals(ctx, 2, 1)
}

func (suite *QueriesIntegrationTestSuite) TestPendingItems() {
	ctx := context.Background()
	first := suite.seedItem(ctx, "MY", 100)
	second := suite.seedItem(ctx, "SG", 100)
	third := suite.seedItem(ctx, "MY", 100)
	suite.forward(ctx, first, "MY")
	suite.forward(ctx, second, "SG")
	suite.forward(ctx, third, "MY")

	handler := queries.NewGetPendingItemsQueryHandler(suite.db, containerAddress)

	all, err := queries.NewGetPendingItemsQuery("")
	suite.Require().NoError(err)
	pending, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 3)
	suite.EqualValues(first, pending[0].OriginItemID)
	suite.EqualValues(second, pending[1].OriginItemID)
	suite.EqualValues(third, pending[2].OriginItemID)
	suite.True(pending[0].OriginRegistry.IsEqual(courierAddress))

	my, err := queries.NewGetPendingItemsQuery("my")
	suite.Require().NoError(err)
	pending, err = handler.Handle(ctx, my)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.EqualValues(first, pending[0].OriginItemID)
	suite.EqualValues(third, pending[1].OriginItemID)

	backlog, err := handler.Backlog(ctx)
	suite.Require().NoError(err)
	suite.Equal([]queries.PendingBacklogResponse{
		{Destination: "MY", Count: 2},
		{Destination: "SG", Count: 1},
	}, backlog)
}

func (suite *QueriesIntegrationTestSuite) TestGetContainer() {
	ctx := context.Background()
	first := suite.seedItem(ctx, "MY", 100)
	other := suite.seedItem(ctx, "SG", 100)
	second := suite.seedItem(ctx, "MY", 100)
	suite.forward(ctx, first, "MY")
	suite.forward(ctx, other, "SG")
	suite.forward(ctx, second, "MY")

	id := suite.seedContainer(ctx, "MY")
	initCmd, err := commands.NewInitContainerShipmentCommand(id, "Departed", "vessel loaded", "Port Klang")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.initContainer.Handle(ctx, initCmd))

	handler := queries.NewGetContainerQueryHandler(suite.db, containerAddress)

	query, err := queries.NewGetContainerQuery(id)
	suite.Require().NoError(err)
	c, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.EqualValues(1, c.ID)
	suite.Equal("MY", c.Destination.String())
	suite.True(c.Receiver.IsEqual(receiverAddress))
	suite.Equal("Kuala Lumpur", c.LocationName)
	suite.Equal(container.Ongoing, c.Status)
	suite.Equal(2, c.ItemCount)
	suite.Equal(1, c.CheckpointCount)

	itemsQuery, err := queries.NewGetContainerItemsQuery(id)
	suite.Require().NoError(err)
	refs, err := handler.HandleItems(ctx, itemsQuery)
	suite.Require().NoError(err)
	suite.Equal([]queries.ItemRefResponse{
		{OriginRegistry: courierAddress, OriginItemID: first},
		{OriginRegistry: courierAddress, OriginItemID: second},
	}, refs)

	cpQuery, err := queries.NewGetContainerCheckpointsQuery(id)
	suite.Require().NoError(err)
	checkpoints, err := handler.HandleCheckpoints(ctx, cpQuery)
	suite.Require().NoError(err)
	suite.Require().Len(checkpoints, 1)
	suite.Equal("Departed", checkpoints[0].StatusLabel)
	suite.True(checkpoints[0].Handler.IsZero())

	// the SG entry is still waiting
	all, err := queries.NewGetPendingItemsQuery("")
	suite.Require().NoError(err)
	pending, err := queries.NewGetPendingItemsQueryHandler(suite.db, containerAddress).Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.EqualValues(other, pending[0].OriginItemID)
}

func (suite *QueriesIntegrationTestSuite) TestGetContainer_NotFound() {
	ctx := context.Background()
	handler := queries.NewGetContainerQueryHandler(suite.db, containerAddress)

	query, err := queries.NewGetContainerQuery(1)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	itemsQuery, err := queries.NewGetContainerItemsQuery(1)
	suite.Require().NoError(err)
	_, err = handler.HandleItems(ctx, itemsQuery)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetBalance() {
	ctx := context.Background()
	handler := queries.NewGetBalanceQueryHandler(suite.db)

	query, err := queries.NewGetBalanceQuery(payeeAddress.String())
	suite.Require().NoError(err)

	balance, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Zero(balance)

	id := suite.seedItem(ctx, "MY", 10000)
	suite.forward(ctx, id, "MY")
	cmd, err := commands.NewCompleteItemShipmentCommand(id, "Delivered", "signed", "Penang", 10000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.completeItem.Handle(ctx, cmd))

	balance, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.EqualValues(10000, balance)
}

func (suite *QueriesIntegrationTestSuite) seedItem(ctx context.Context, destination string, price int64) uint64 {
	cmd, err := commands.NewCreateItemCommand(
		2, destination, receiverAddress.String(), "Penang", payeeAddress.String(), price)
	suite.Require().NoError(err)

	id, err := suite.createItem.Handle(ctx, cmd)
	suite.Require().NoError(err)
	return id
}

func (suite *QueriesIntegrationTestSuite) forward(ctx context.Context, id uint64, destination string) {
	cmd, err := commands.NewForwardItemCommand(id, containerAddress.String(), destination, "Forwarded", "", "Penang")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.forwardItem.Handle(ctx, cmd))
}

func (suite *QueriesIntegrationTestSuite) seedContainer(ctx context.Context, destination string) uint64 {
	cmd, err := commands.NewCreateContainerCommand(1, destination, receiverAddress.String(), "Kuala Lumpur")
	suite.Require().NoError(err)

	id, err := suite.createContainer.Handle(ctx, cmd)
	suite.Require().NoError(err)
	return id
}

func (suite *QueriesIntegrationTestSuite) assertTotals(ctx context.Context, items, containers uint64) {
	total, err := queries.NewGetTotalItemsQueryHandler(suite.db, courierAddress).
		Handle(ctx, queries.NewGetTotalItemsQuery())
	suite.Require().NoError(err)
	suite.Equal(items, total)

	total, err = queries.NewGetTotalContainersQueryHandler(suite.db, containerAddress).
		Handle(ctx, queries.NewGetTotalContainersQuery())
	suite.Require().NoError(err)
	suite.Equal(containers, total)
}
