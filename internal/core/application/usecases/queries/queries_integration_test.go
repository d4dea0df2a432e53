package queries_test

import (
	"context"
	"testing"

	"backoffice/internal/adapters/out/postgres/catalogrepo"
	"backoffice/internal/adapters/out/postgres/manifestrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/overpackrepo"
	"backoffice/internal/adapters/out/postgres/pgtest"
	"backoffice/internal/adapters/out/postgres/shipmentrepo"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/manifest"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

const (
	owner    kernel.PrincipalID = 31
	stranger kernel.PrincipalID = 32
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// QueriesIntegrationTestSuite runs every read model against PostgreSQL.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	pg *pgtest.Database
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) TestListShipments_PagesOwnShipmentsOnly() {
	ctx := context.Background()
	for range 3 {
		suite.addShipment(owner)
	}
	suite.addShipment(stranger)

	page, err := queries.NewPage(2, 2)
	suite.Require().NoError(err)
	query, err := queries.NewListShipmentsQuery(owner, page)
	suite.Require().NoError(err)

	result, err := queries.NewListShipmentsQueryHandler(suite.pg.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(3, result.TotalShipments)
	suite.Equal(2, result.TotalPages)
	suite.Require().Len(result.Shipments, 1)
	suite.Equal("eCommerce", result.Shipments[0].Class)
	suite.Require().Len(result.Shipments[0].Packages, 1)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipment_ForeignShipmentIsNotFound() {
	s := suite.addShipment(stranger)

	query, err := queries.NewGetShipmentQuery(owner, s.ID())
	suite.Require().NoError(err)

	_, err = queries.NewGetShipmentQueryHandler(suite.pg.DB).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipment_ReportsLabelAndOverpack() {
	ctx := context.Background()
	o := suite.addOverpack("US_ORD")
	s := suite.addShipment(owner)
	suite.Require().NoError(o.AddShipment(s))
	suite.Require().NoError(shipmentrepo.NewGormShipmentRepository(suite.pg.DB, noopTracker{}).Update(ctx, s))
	suite.Require().NoError(suite.pg.DB.Create(&shipmentrepo.LabelDTO{
		ID:         kernel.NewUUID().Bytes(),
		ShipmentID: s.ID().Bytes(),
	}).Error)

	query, err := queries.NewGetShipmentQuery(owner, s.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetShipmentQueryHandler(suite.pg.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(view.HasLabel)
	suite.False(view.Processed)
	suite.Require().NotNil(view.OverpackID)
	suite.True(view.OverpackID.IsEqual(o.ID()))
}

func (suite *QueriesIntegrationTestSuite) TestGetOverpack_DerivesMembership() {
	ctx := context.Background()
	o := suite.addOverpack("US_ORD")
	repo := shipmentrepo.NewGormShipmentRepository(suite.pg.DB, noopTracker{})
	for range 2 {
		s := suite.addShipment(owner)
		suite.Require().NoError(o.AddShipment(s))
		suite.Require().NoError(repo.Update(ctx, s))
	}
	suite.addShipment(owner)

	query, err := queries.NewGetOverpackQuery(owner, o.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetOverpackQueryHandler(suite.pg.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(2, view.TotalShipments)
	suite.Len(view.ShipmentIDs, 2)
	suite.Equal("US_ORD", view.EntryPoint)
	suite.Nil(view.ManifestID)
}

func (suite *QueriesIntegrationTestSuite) TestGetManifest_ListsOverpacks() {
	ctx := context.Background()
	o1, o2 := suite.addOverpack("LAX01"), suite.addOverpack("LAX01")

	m, err := manifest.NewManifest(kernel.NewUUID(), owner, "UPS", "1Z999")
	suite.Require().NoError(err)
	suite.Require().NoError(m.AddOverpack(manifest.Candidate{Overpack: o1, TotalShipments: 1}))
	suite.Require().NoError(m.AddOverpack(manifest.Candidate{Overpack: o2, TotalShipments: 1}))
	suite.Require().NoError(manifestrepo.NewGormManifestRepository(suite.pg.DB, noopTracker{}).Add(ctx, m))
	overpacks := overpackrepo.NewGormOverpackRepository(suite.pg.DB, noopTracker{})
	suite.Require().NoError(overpacks.Update(ctx, o1))
	suite.Require().NoError(overpacks.Update(ctx, o2))

	query, err := queries.NewGetManifestQuery(owner, m.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetManifestQueryHandler(suite.pg.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("LAX01", view.EntryPoint)
	suite.Equal(2, view.TotalOverpacks)
	suite.Len(view.OverpackIDs, 2)

	foreign, err := queries.NewGetManifestQuery(stranger, m.ID())
	suite.Require().NoError(err)
	_, err = queries.NewGetManifestQueryHandler(suite.pg.DB).Handle(ctx, foreign)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestOrders_ScopedThroughShop() {
	ctx := context.Background()
	mine := suite.addOrder(owner, 3)
	suite.addOrder(stranger, 1)

	page, err := queries.NewPage(0, 0)
	suite.Require().NoError(err)
	list, err := queries.NewListOrdersQuery(owner, page)
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.pg.DB).Handle(ctx, list)
	suite.Require().NoError(err)
	suite.Equal(1, result.TotalOrders)
	suite.Equal(1, result.TotalPages)
	suite.Require().Len(result.Orders, 1)
	suite.Equal("Processing", result.Orders[0].Status)
	suite.Require().Len(result.Orders[0].LineItems, 1)
	suite.Equal(3, result.Orders[0].LineItems[0].Quantity)

	get, err := queries.NewGetOrderQuery(owner, mine.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(ctx, get)
	suite.Require().NoError(err)
	suite.True(view.ID.IsEqual(mine.ID()))

	hidden, err := queries.NewGetOrderQuery(stranger, mine.ID())
	suite.Require().NoError(err)
	_, err = queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(ctx, hidden)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) addShipment(by kernel.PrincipalID) *shipment.Shipment {
	ep, err := kernel.NewEntryPoint("US_ORD")
	suite.Require().NoError(err)
	pkg, err := shipment.NewPackage(1, shipment.Dimensions{})
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(kernel.NewUUID(), by, shipment.NewTrackingNumber(), shipment.Details{
		EntryPoint: ep,
		Class:      shipment.ECommerce,
		Packages:   []shipment.Package{pkg},
	}, shipment.NewVolumetricRater(shipment.DefaultVolumetricDivisor))
	suite.Require().NoError(err)
	suite.Require().NoError(shipmentrepo.NewGormShipmentRepository(suite.pg.DB, noopTracker{}).Add(context.Background(), s))
	return s
}

func (suite *QueriesIntegrationTestSuite) addOverpack(code string) *overpack.Overpack {
	ep, err := kernel.NewEntryPoint(code)
	suite.Require().NoError(err)
	o, err := overpack.NewOverpack(kernel.NewUUID(), owner, overpack.Details{EntryPoint: ep})
	suite.Require().NoError(err)
	suite.Require().NoError(overpackrepo.NewGormOverpackRepository(suite.pg.DB, noopTracker{}).Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) addOrder(by kernel.PrincipalID, qty int) *order.Order {
	ctx := context.Background()
	catalogRepo := catalogrepo.NewGormCatalogRepository(suite.pg.DB, noopTracker{})

	shop, err := catalog.NewShop(kernel.NewUUID(), by, "Acme")
	suite.Require().NoError(err)
	product, err := catalog.NewProduct(kernel.NewUUID(), by, "Mug")
	suite.Require().NoError(err)
	suite.Require().NoError(catalogRepo.AddShop(ctx, shop))
	suite.Require().NoError(catalogRepo.AddProduct(ctx, product))

	o, err := order.NewOrder(kernel.NewUUID(), shop, by, "#1", order.Changes{
		LineItems: []order.LineItemRequest{{ProductID: product.ID(), Product: product, SKU: "MUG", Quantity: qty}},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.pg.DB, noopTracker{}).Add(ctx, o))
	return o
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
