package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/adapters/out/postgres/pgtest"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type CompositionRootIntegrationTestSuite struct {
	suite.Suite
	pg *pgtest.Database
}

func (suite *CompositionRootIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CompositionRootIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *CompositionRootIntegrationTestSuite) newRoot() *CompositionRoot {
	cfg := Config{
		JWTSecret:       "secret",
		OutboxBatchSize: 10,
		Kafka:           KafkaConfig{Brokers: []string{"localhost:9092"}, TopicPrefix: "test."},
	}
	// Nothing below dials redis until a request carries an Idempotency-Key.
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	suite.T().Cleanup(func() { _ = client.Close() })

	root := NewCompositionRoot(cfg, suite.pg.DB, client, zerolog.Nop())
	suite.T().Cleanup(func() { _ = root.Close() })
	return root
}

func (suite *CompositionRootIntegrationTestSuite) TestHandlers_AllUseCasesWired() {
	h := suite.newRoot().Handlers()

	suite.NotNil(h.CreateShipment)
	suite.NotNil(h.DeleteShipment)
	suite.NotNil(h.ListShipments)
	suite.NotNil(h.PatchOverpackShipments)
	suite.NotNil(h.CreateManifest)
	suite.NotNil(h.GetManifest)
	suite.NotNil(h.PatchOrderStatuses)
	suite.NotNil(h.ListOrders)
}

func (suite *CompositionRootIntegrationTestSuite) TestNewRouter_ServesDocumentAndRejectsAnonymousCalls() {
	router, err := suite.newRoot().NewRouter(context.Background())
	suite.Require().NoError(err)

	doc := httptest.NewRecorder()
	router.ServeHTTP(doc, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	suite.Equal(http.StatusOK, doc.Code)

	anon := httptest.NewRecorder()
	router.ServeHTTP(anon, httptest.NewRequest(http.MethodGet, "/v2/orders", nil))
	suite.Equal(http.StatusUnauthorized, anon.Code)
}

func (suite *CompositionRootIntegrationTestSuite) TestNewJobManager_StartsAndStops() {
	manager := suite.newRoot().NewJobManager()

	suite.Require().NoError(manager.StartAll())
	manager.StopAll()
}

func (suite *CompositionRootIntegrationTestSuite) TestMigrate_ReportsExistingTables() {
	var out bytes.Buffer

	suite.Require().NoError(migrate(&out, suite.pg.DB, false))

	suite.Contains(out.String(), "shipments")
	suite.Contains(out.String(), "EXISTS")
	suite.Contains(out.String(), "Schema is up to date")
}

func (suite *CompositionRootIntegrationTestSuite) TestMigrate_DryRunDoesNotMigrate() {
	var out bytes.Buffer

	suite.Require().NoError(migrate(&out, suite.pg.DB, true))

	suite.NotContains(out.String(), "Schema is up to date")
}

func TestCompositionRootIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CompositionRootIntegrationTestSuite))
}
