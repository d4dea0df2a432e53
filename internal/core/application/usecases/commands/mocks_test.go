package commands_test

import (
	"context"
	"errors"
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/manifest"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	owner    kernel.PrincipalID = 11
	stranger kernel.PrincipalID = 12
)

type MockEntityFinder struct{ mock.Mock }

func (m *MockEntityFinder) Find(ctx context.Context, ref kernel.EntityRef) (kernel.Ownable, error) {
	args := m.Called(ctx, ref)
	entity, _ := args.Get(0).(kernel.Ownable)
	return entity, args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}
func (m *MockShipmentRepository) ResolveOwned(
	ctx context.Context,
	principal kernel.PrincipalID,
	refs []string,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, principal, refs)
	found, _ := args.Get(0).([]*shipment.Shipment)
	return found, args.Error(1)
}
func (m *MockShipmentRepository) ListByOverpack(ctx context.Context, id kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).([]*shipment.Shipment)
	return found, args.Error(1)
}

type MockOverpackRepository struct{ mock.Mock }

func (m *MockOverpackRepository) Add(ctx context.Context, o *overpack.Overpack) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOverpackRepository) Update(ctx context.Context, o *overpack.Overpack) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOverpackRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockOverpackRepository) Get(ctx context.Context, id kernel.UUID) (*overpack.Overpack, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*overpack.Overpack)
	return o, args.Error(1)
}
func (m *MockOverpackRepository) CountShipments(ctx context.Context, id kernel.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockManifestRepository struct{ mock.Mock }

func (m *MockManifestRepository) Add(ctx context.Context, mf *manifest.Manifest) error {
	return m.Called(ctx, mf).Error(0)
}
func (m *MockManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, id)
	mf, _ := args.Get(0).(*manifest.Manifest)
	return mf, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddShop(ctx context.Context, s *catalog.Shop) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockCatalogRepository) AddProduct(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockCatalogRepository) AddProductSku(ctx context.Context, s *catalog.ProductSku) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockCatalogRepository) GetShop(ctx context.Context, id kernel.UUID) (*catalog.Shop, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*catalog.Shop)
	return s, args.Error(1)
}
func (m *MockCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}
func (m *MockCatalogRepository) GetProductSku(
	ctx context.Context,
	productID, shopID kernel.UUID,
) (*catalog.ProductSku, error) {
	args := m.Called(ctx, productID, shopID)
	s, _ := args.Get(0).(*catalog.ProductSku)
	return s, args.Error(1)
}
func (m *MockCatalogRepository) FindProducts(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).(map[kernel.UUID]*catalog.Product)
	return found, args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, msg ports.OutboxMessage) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}
func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msgs []ports.OutboxMessage) error {
	return m.Called(ctx, msgs).Error(0)
}

// MockUoW satisfies every feature unit of work.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) EntityFinder() ports.EntityFinder {
	return m.Called().Get(0).(ports.EntityFinder)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) OverpackRepository() ports.OverpackRepository {
	return m.Called().Get(0).(ports.OverpackRepository)
}
func (m *MockUoW) ManifestRepository() ports.ManifestRepository {
	return m.Called().Get(0).(ports.ManifestRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}
func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	return m.Called().Get(0).(commands.ShipmentUoW)
}

type MockOverpackUoWFactory struct{ mock.Mock }

func (m *MockOverpackUoWFactory) Create() commands.OverpackUoW {
	return m.Called().Get(0).(commands.OverpackUoW)
}

type MockManifestUoWFactory struct{ mock.Mock }

func (m *MockManifestUoWFactory) Create() commands.ManifestUoW {
	return m.Called().Get(0).(commands.ManifestUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}

// fixtures

func entryPoint(t *testing.T, code string) kernel.EntryPoint {
	t.Helper()
	ep, err := kernel.NewEntryPoint(code)
	require.NoError(t, err)
	return ep
}

func storedShipment(t *testing.T, snap shipment.Snapshot) *shipment.Shipment {
	t.Helper()
	snap.ID = kernel.NewUUID()
	if snap.Owner == kernel.NoPrincipal {
		snap.Owner = owner
	}
	snap.TrackingNumber = shipment.NewTrackingNumber()
	snap.Details.Class = shipment.ECommerce
	s, err := shipment.RestoreShipment(snap)
	require.NoError(t, err)
	return s
}

func newOverpack(t *testing.T, by kernel.PrincipalID, code string) *overpack.Overpack {
	t.Helper()
	o, err := overpack.NewOverpack(kernel.NewUUID(), by, overpack.Details{EntryPoint: entryPoint(t, code)})
	require.NoError(t, err)
	return o
}

func newShop(t *testing.T, by kernel.PrincipalID) *catalog.Shop {
	t.Helper()
	s, err := catalog.NewShop(kernel.NewUUID(), by, "Acme")
	require.NoError(t, err)
	return s
}

func newProduct(t *testing.T, by kernel.PrincipalID) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), by, "Mug")
	require.NoError(t, err)
	return p
}

func storedOrder(t *testing.T, shop *catalog.Shop, status order.Status, items ...order.LineItem) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:          kernel.NewUUID(),
		ShopID:      shop.ID(),
		ShopOwner:   shop.Owner(),
		ShopOrderID: "#1001",
		Status:      status,
		Priority:    order.DefaultPriority,
		LineItems:   items,
	})
	require.NoError(t, err)
	return o
}

// parsed returns a body reader that yields v.
func parsed[T any](v T) func() (T, error) {
	return func() (T, error) { return v, nil }
}

// unread returns a body reader that fails the test when called.
func unread[T any](t *testing.T) func() (T, error) {
	return func() (T, error) {
		t.Error("request body was read")
		var zero T
		return zero, errors.New("unexpected read")
	}
}

func membership(removals, additions []string) commands.MembershipReader {
	return func() ([]string, []string, error) { return removals, additions, nil }
}
