package commands

import (
	"context"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
)

// CreateOrderCommandHandler handles order creation.
// The shop passes through the ownership gate; inactive shops, foreign products and
// disallowed statuses are reported together as one validation error.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	gate := services.NewOwnershipGate(uow.EntityFinder())
	shop, err := services.AuthorizeAs[*catalog.Shop](
		ctx, gate, cmd.Principal(), kernel.RefTo(kernel.ShopEntity, cmd.ShopID()),
	)
	if err != nil {
		return err
	}

	changes, err := withProducts(ctx, uow.CatalogRepository(), cmd.Changes())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), shop, cmd.Principal(), cmd.ShopOrderID(), changes)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return commit(ctx, uow, "create order")
}
