package cmd

import (
	"context"
	"fmt"

	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/kafka"
	"backoffice/internal/adapters/out/postgres"
	redisout "backoffice/internal/adapters/out/redis"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CompositionRoot owns the process-wide dependencies and builds every handler from them.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	redis      *redis.Client
	publisher  *kafka.Publisher
	uowFactory postgres.GormUnitOfWorkFactory
	rater      shipment.Rater
	logger     zerolog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, redisClient *redis.Client, logger zerolog.Logger) *CompositionRoot {
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		redis:      redisClient,
		publisher:  kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix, logger),
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		rater:      shipment.NewVolumetricRater(cfg.VolumetricDivisor),
		logger:     logger,
	}
}

// NewRouter builds the HTTP entry point with every use case wired in.
func (c *CompositionRoot) NewRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpin.LoadAPIDoc(ctx)
	if err != nil {
		return nil, err
	}

	return httpin.NewRouter(httpin.RouterConfig{
		Server:      httpin.NewServer(c.Handlers()),
		JWTSecret:   c.cfg.JWTSecret,
		Log:         c.logger,
		Doc:         doc,
		Idempotency: c.CreateIdempotencyStore(),
		Readiness: map[string]httpin.Pinger{
			"postgres": httpin.PingFunc(c.pingDatabase),
			"redis":    httpin.PingFunc(func(ctx context.Context) error { return c.redis.Ping(ctx).Err() }),
		},
	}), nil
}

// Handlers collects the use cases the HTTP adapter dispatches to.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	createShipment := c.CreateCreateShipmentCommandHandler()
	updateShipment := c.CreateUpdateShipmentCommandHandler()
	deleteShipment := c.CreateDeleteShipmentCommandHandler()
	createOverpack := c.CreateCreateOverpackCommandHandler()
	updateOverpack := c.CreateUpdateOverpackCommandHandler()
	deleteOverpack := c.CreateDeleteOverpackCommandHandler()
	patchOverpack := c.CreatePatchOverpackShipmentsCommandHandler()
	createManifest := c.CreateCreateManifestCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()
	patchStatuses := c.CreatePatchOrderStatusesCommandHandler()

	return httpin.Handlers{
		CreateShipment: &createShipment,
		UpdateShipment: &updateShipment,
		DeleteShipment: &deleteShipment,
		GetShipment:    queries.NewGetShipmentQueryHandler(c.gormDB),
		ListShipments:  queries.NewListShipmentsQueryHandler(c.gormDB),

		CreateOverpack:         &createOverpack,
		UpdateOverpack:         &updateOverpack,
		DeleteOverpack:         &deleteOverpack,
		PatchOverpackShipments: &patchOverpack,
		GetOverpack:            queries.NewGetOverpackQueryHandler(c.gormDB),

		CreateManifest: &createManifest,
		GetManifest:    queries.NewGetManifestQueryHandler(c.gormDB),

		CreateOrder:        &createOrder,
		UpdateOrder:        &updateOrder,
		DeleteOrder:        &deleteOrder,
		PatchOrderStatuses: &patchStatuses,
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:         queries.NewListOrdersQueryHandler(c.gormDB),
	}
}

// NewJobManager builds the scheduled jobs.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	relay := c.CreateRelayOutboxCommandHandler()
	return jobs.NewJobManager(
		jobs.NewOutboxRelayJob(&relay, c.cfg.OutboxRelaySchedule, c.cfg.OutboxBatchSize, c.logger),
		c.logger,
	)
}

func (c *CompositionRoot) CreateIdempotencyStore() *redisout.IdempotencyStore {
	return redisout.NewIdempotencyStore(c.redis, c.cfg.IdempotencyTTL)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.rater)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(c.shipmentUoWFactory(), c.rater)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateOverpackCommandHandler() commands.CreateOverpackCommandHandler {
	return commands.NewCreateOverpackCommandHandler(c.overpackUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOverpackCommandHandler() commands.UpdateOverpackCommandHandler {
	return commands.NewUpdateOverpackCommandHandler(c.overpackUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOverpackCommandHandler() commands.DeleteOverpackCommandHandler {
	return commands.NewDeleteOverpackCommandHandler(c.overpackUoWFactory())
}

func (c *CompositionRoot) CreatePatchOverpackShipmentsCommandHandler() commands.PatchOverpackShipmentsCommandHandler {
	return commands.NewPatchOverpackShipmentsCommandHandler(c.overpackUoWFactory())
}

func (c *CompositionRoot) CreateCreateManifestCommandHandler() commands.CreateManifestCommandHandler {
	var f commands.ManifestUoWFactory = FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateManifestCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePatchOrderStatusesCommandHandler() commands.PatchOrderStatusesCommandHandler {
	return commands.NewPatchOrderStatusesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher)
}

// Close releases the broker connection. The database and redis handles belong to the caller.
func (c *CompositionRoot) Close() error {
	if err := c.publisher.Close(); err != nil {
		return fmt.Errorf("close kafka publisher: %w", err)
	}
	return nil
}

func (c *CompositionRoot) pingDatabase(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) overpackUoWFactory() commands.OverpackUoWFactory {
	return FuncOverpackUoWFactory(func() commands.OverpackUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncOverpackUoWFactory func() commands.OverpackUoW

func (f FuncOverpackUoWFactory) Create() commands.OverpackUoW {
	return f()
}

type FuncManifestUoWFactory func() commands.ManifestUoW

func (f FuncManifestUoWFactory) Create() commands.ManifestUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
