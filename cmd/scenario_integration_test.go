package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tracking/cmd"
	http_adapter "tracking/internal/adapters/in/http"
	postgres_adapter "tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/pgtest"
	"tracking/internal/generated/servers"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	courierAddress         = "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"
	containerAddress       = "0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2"
	remoteCourierAddress   = "0x617F2E2fD72FD9D5503197092aC168c91465E7f2"
	remoteContainerAddress = "0x17F6AD8Ef982297579C203069C1DbfFE4348c372"
	receiverAddress        = "0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db"
	payeeAddress           = "0x78731D3Ca6b7E34aC0F824c42a7cC18A495cabaB"
)

// ScenarioIntegrationTestSuite drives two nodes over HTTP. The local node hosts a courier
// and a container registry; the remote node hosts the container registry reached through
// the registry directory.
type ScenarioIntegrationTestSuite struct {
	suite.Suite
	pg *pgtest.Database
	db *gorm.DB

	local  *httptest.Server
	remote *httptest.Server
}

func TestScenarioIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(ScenarioIntegrationTestSuite))
}

func (suite *ScenarioIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.db = pg.DB
	suite.Require().NoError(postgres_adapter.Migrate(suite.db))

	suite.remote = suite.startNode(remoteCourierAddress, remoteContainerAddress, "")
	suite.local = suite.startNode(courierAddress, containerAddress,
		remoteContainerAddress+"="+suite.remote.URL)
}

func (suite *ScenarioIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + postgres_adapter.TableNames).Error)
}

func (suite *ScenarioIntegrationTestSuite) TearDownSuite() {
	suite.local.Close()
	suite.remote.Close()
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *ScenarioIntegrationTestSuite) startNode(courier, container, directory string) *httptest.Server {
	cfg := cmd.Config{
		Registries: cmd.RegistriesConfig{
			CourierAddress:   courier,
			ContainerAddress: container,
			Directory:        directory,
			HandoffTimeout:   5 * time.Second,
		},
		Kafka: cmd.KafkaConfig{OutboxBatchSize: 10},
	}

	app, err := cmd.NewCompositionRoot(cfg, suite.db, zap.NewNop())
	suite.Require().NoError(err)

	e, err := http_adapter.NewRouter(http_adapter.NewServer(app.CreateUseCases()), http_adapter.RouterOptions{
		Logger: zap.NewNop(),
	})
	suite.Require().NoError(err)

	return httptest.NewServer(e)
}

func (suite *ScenarioIntegrationTestSuite) TestDeliveryWithPayment() {
	id := suite.createItem(10000)
	suite.forward(suite.local, id, containerAddress, "MY")

	containerID := suite.createContainer(suite.local, "MY")

	var refs []servers.ItemRef
	suite.get(suite.local, fmt.Sprintf("/api/v1/containers/%d/items", containerID), &refs)
	suite.Require().Len(refs, 1)
	suite.Equal(courierAddress, refs[0].OriginRegistry)
	suite.Equal(id, refs[0].OriginItemId)

	status := suite.post(suite.local, fmt.Sprintf("/api/v1/items/%d/complete", id), servers.CompleteItem{
		StatusLabel: "Delivered",
		Payment:     10000,
	}, nil)
	suite.Equal(http.StatusNoContent, status)

	suite.Equal(servers.ItemStatusCompleted, suite.itemStatus(id))
	suite.EqualValues(10000, suite.balance(payeeAddress))
}

func (suite *ScenarioIntegrationTestSuite) TestPaymentMismatchChangesNothing() {
	id := suite.createItem(10000)
	suite.forward(suite.local, id, containerAddress, "MY")

	var before servers.Item
	suite.get(suite.local, fmt.Sprintf("/api/v1/items/%d", id), &before)

	var apiErr servers.Error
	status := suite.post(suite.local, fmt.Sprintf("/api/v1/items/%d/complete", id), servers.CompleteItem{
		StatusLabel: "Delivered",
		Payment:     9999,
	}, &apiErr)
	suite.Equal(http.StatusPaymentRequired, status)
	suite.Equal(http.StatusPaymentRequired, apiErr.Code)

	var after servers.Item
	suite.get(suite.local, fmt.Sprintf("/api/v1/items/%d", id), &after)
	suite.Equal(servers.ItemStatusOngoing, after.Status)
	suite.Equal(before.CheckpointCount, after.CheckpointCount)
	suite.Zero(suite.balance(payeeAddress))
}

func (suite *ScenarioIntegrationTestSuite) TestMissingAfterCompletionIsRejected() {
	id := suite.createItem(500)
	suite.forward(suite.local, id, containerAddress, "MY")
	suite.Equal(http.StatusNoContent, suite.post(suite.local, fmt.Sprintf("/api/v1/items/%d/complete", id),
		servers.CompleteItem{StatusLabel: "Delivered", Payment: 500}, nil))

	status := suite.post(suite.local, fmt.Sprintf("/api/v1/items/%d/missing", id), nil, nil)

	suite.Equal(http.StatusConflict, status)
	suite.Equal(servers.ItemStatusCompleted, suite.itemStatus(id))
}

func (suite *ScenarioIntegrationTestSuite) TestForwardToRemoteContainerRegistry() {
	id := suite.createItem(700)
	suite.forward(suite.local, id, remoteContainerAddress, "SG")

	var pending []servers.PendingItem
	suite.get(suite.remote, "/api/v1/pending-items?destination=SG", &pending)
	suite.Require().Len(pending, 1)
	suite.Equal(courierAddress, pending[0].OriginRegistry)
	suite.Equal(id, pending[0].OriginItemId)

	suite.get(suite.local, "/api/v1/pending-items", &pending)
	suite.Empty(pending)

	containerID := suite.createContainer(suite.remote, "SG")

	var c servers.Container
	suite.get(suite.remote, fmt.Sprintf("/api/v1/containers/%d", containerID), &c)
	suite.Equal(remoteContainerAddress, c.Registry)
	suite.Equal(1, c.ItemCount)
}

func (suite *ScenarioIntegrationTestSuite) TestForwardToUnknownRegistryChangesNothing() {
	id := suite.createItem(700)

	var apiErr servers.Error
	status := suite.post(suite.local, fmt.Sprintf("/api/v1/items/%d/forward", id), servers.ForwardItem{
		StatusLabel:    "Forwarded",
		TargetRegistry: receiverAddress,
		Destination:    "MY",
	}, &apiErr)

	suite.Equal(http.StatusBadRequest, status)
	suite.Equal(servers.ItemStatusProcessing, suite.itemStatus(id))
}

func (suite *ScenarioIntegrationTestSuite) TestValidationRejectsMalformedBody() {
	var apiErr servers.Error
	status := suite.post(suite.local, "/api/v1/items", map[string]any{"destination": "MY"}, &apiErr)

	suite.Equal(http.StatusBadRequest, status)
	suite.NotEmpty(apiErr.Message)
}

func (suite *ScenarioIntegrationTestSuite) TestOverlongLocationIsRejected() {
	id := suite.createItem(800)
	location := strings.Repeat("a", 256)

	var apiErr servers.Error
	status := suite.post(suite.local, fmt.Sprintf("/api/v1/items/%d/checkpoints", id), servers.NewItemCheckpoint{
		StatusLabel: "Sorted",
		Location:    &location,
	}, &apiErr)

	suite.Equal(http.StatusBadRequest, status)
	suite.Equal(http.StatusBadRequest, apiErr.Code)
}

func (suite *ScenarioIntegrationTestSuite) createItem(price int64) int64 {
	location := "Penang"
	var created servers.Created
	status := suite.post(suite.local, "/api/v1/items", servers.NewItem{
		ShipmentType:     1,
		Destination:      "MY",
		Receiver:         receiverAddress,
		ReceiverLocation: &location,
		Payee:            payeeAddress,
		Price:            price,
	}, &created)
	suite.Require().Equal(http.StatusCreated, status)
	return created.Id
}

func (suite *ScenarioIntegrationTestSuite) forward(node *httptest.Server, id int64, target, destination string) {
	status := suite.post(node, fmt.Sprintf("/api/v1/items/%d/forward", id), servers.ForwardItem{
		StatusLabel:    "Forwarded",
		TargetRegistry: target,
		Destination:    destination,
	}, nil)
	suite.Require().Equal(http.StatusNoContent, status)
}

func (suite *ScenarioIntegrationTestSuite) createContainer(node *httptest.Server, destination string) int64 {
	var created servers.Created
	status := suite.post(node, "/api/v1/containers", servers.NewContainer{
		ShipmentType: 1,
		Destination:  destination,
		Receiver:     receiverAddress,
	}, &created)
	suite.Require().Equal(http.StatusCreated, status)
	return created.Id
}

func (suite *ScenarioIntegrationTestSuite) itemStatus(id int64) servers.ItemStatus {
	var status servers.StatusResponse
	suite.get(suite.local, fmt.Sprintf("/api/v1/items/%d/status", id), &status)
	return servers.ItemStatus(status.Status)
}

func (suite *ScenarioIntegrationTestSuite) balance(address string) int64 {
	var b servers.Balance
	suite.get(suite.local, "/api/v1/accounts/"+address+"/balance", &b)
	return b.Balance
}

func (suite *ScenarioIntegrationTestSuite) post(node *httptest.Server, path string, body, out any) int {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(http.MethodPost, node.URL+path, reader)
	suite.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := node.Client().Do(req)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		suite.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (suite *ScenarioIntegrationTestSuite) get(node *httptest.Server, path string, out any) {
	resp, err := node.Client().Get(node.URL + path)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Require().Equal(http.StatusOK, resp.StatusCode, path)
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}
