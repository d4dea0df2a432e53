package http

import (
	"context"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/shipment"
)

// CommandHandler runs a command that produces no result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler runs a command or query that produces a result.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, in C) (R, error)
}

// Handlers lists every use case the HTTP adapter dispatches to.
type Handlers struct {
	CreateShipment ResultHandler[commands.CreateShipmentCommand, string]
	UpdateShipment CommandHandler[commands.UpdateShipmentCommand]
	DeleteShipment ResultHandler[commands.DeleteShipmentCommand, shipment.Disposal]
	GetShipment    ResultHandler[queries.GetShipmentQuery, queries.ShipmentView]
	ListShipments  ResultHandler[queries.ListShipmentsQuery, queries.ListShipmentsQueryResponse]

	CreateOverpack         CommandHandler[commands.CreateOverpackCommand]
	UpdateOverpack         CommandHandler[commands.UpdateOverpackCommand]
	DeleteOverpack         CommandHandler[commands.DeleteOverpackCommand]
	PatchOverpackShipments CommandHandler[commands.PatchOverpackShipmentsCommand]
	GetOverpack            ResultHandler[queries.GetOverpackQuery, queries.OverpackView]

	CreateManifest CommandHandler[commands.CreateManifestCommand]
	GetManifest    ResultHandler[queries.GetManifestQuery, queries.ManifestView]

	CreateOrder        CommandHandler[commands.CreateOrderCommand]
	UpdateOrder        CommandHandler[commands.UpdateOrderCommand]
	DeleteOrder        CommandHandler[commands.DeleteOrderCommand]
	PatchOrderStatuses ResultHandler[commands.PatchOrderStatusesCommand, []commands.OrderStatusResult]
	GetOrder           ResultHandler[queries.GetOrderQuery, queries.OrderView]
	ListOrders         ResultHandler[queries.ListOrdersQuery, queries.ListOrdersQueryResponse]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}
