package orderrepo_test

import (
	"context"
	"testing"

	"backoffice/internal/adapters/out/postgres/catalogrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/pgtest"
	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const owner kernel.PrincipalID = 5

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	shop       *catalog.Shop
	product    *catalog.Product
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)

	var err error
	suite.shop, err = catalog.NewShop(kernel.NewUUID(), owner, "Acme")
	suite.Require().NoError(err)
	suite.product, err = catalog.NewProduct(kernel.NewUUID(), owner, "Mug")
	suite.Require().NoError(err)

	catalogRepo := catalogrepo.NewGormCatalogRepository(suite.pg.DB, suite.tracker)
	suite.Require().NoError(catalogRepo.AddShop(ctx, suite.shop))
	suite.Require().NoError(catalogRepo.AddProduct(ctx, suite.product))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	o := suite.createTestOrder(3)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", o.ID(), o).Once()
	repo := orderrepo.NewGormOrderRepository(suite.pg.DB, tracker)

	suite.Require().NoError(repo.Add(ctx, o))

	suite.assertOrderCount(1)
	tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructed_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()
	o := suite.createTestOrder(3)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(o.ID()))
	suite.Equal(order.Processing, got.Status())
	suite.Equal(order.DefaultPriority, got.Priority())
	suite.True(got.ResolveOwner().Is(owner), "owner comes from the shop")
	suite.Require().Len(got.LineItems(), 1)
	suite.Equal(3, got.LineItems()[0].Quantity())
	suite.Equal("MUG-1", got.LineItems()[0].SKU())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingStatus_ReadsAsProcessing() {
	ctx := context.Background()
	o := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().NoError(suite.pg.DB.Exec("UPDATE orders SET status = 0").Error)

	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(order.Processing, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReadyOrder_StoresProcessingWithZeroQuantities() {
	ctx := context.Background()
	o := suite.createTestOrder(5)
	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().NoError(suite.pg.DB.Exec("UPDATE orders SET status = ?", int(order.Ready)).Error)

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Equal(order.Ready, stored.Status())

	suite.Require().NoError(stored.Update(owner, suite.shop, order.Changes{}))
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, got.Status())
	suite.Require().Len(got.LineItems(), 1)
	suite.Equal(0, got.LineItems()[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLineItems() {
	ctx := context.Background()
	o := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	other, err := catalog.NewProduct(kernel.NewUUID(), owner, "Plate")
	suite.Require().NoError(err)
	suite.Require().NoError(catalogrepo.NewGormCatalogRepository(suite.pg.DB, suite.tracker).AddProduct(ctx, other))

	suite.Require().NoError(o.Update(owner, suite.shop, order.Changes{
		LineItems: []order.LineItemRequest{
			{ProductID: suite.product.ID(), Product: suite.product, SKU: "MUG-1", Quantity: 7},
			{ProductID: other.ID(), Product: other, SKU: "PLT-1", Quantity: 2},
		},
	}))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(got.LineItems(), 2)
	suite.Equal(7, got.LineItems()[0].Quantity())
	suite.True(got.LineItems()[1].ProductID().IsEqual(other.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder(1))
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndLineItems() {
	ctx := context.Background()
	o := suite.createTestOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()))

	suite.assertOrderCount(0)
	var items int64
	suite.Require().NoError(suite.pg.DB.Model(&orderrepo.LineItemDTO{}).Count(&items).Error)
	suite.Equal(int64(0), items)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(qty int) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), suite.shop, owner, "#1001", order.Changes{
		LineItems: []order.LineItemRequest{
			{ProductID: suite.product.ID(), Product: suite.product, SKU: "MUG-1", Quantity: qty, SoldFor: 12.5},
		},
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.pg.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
