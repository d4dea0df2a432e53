package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/metrics"
)

type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle runs the edit through the status transition table. A frozen order is
// refused before the requested changes are parsed. A status change is recorded
// as an OrderStatusChanged outbox event.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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
	o, err := services.AuthorizeAs[*order.Order](
		ctx, gate, cmd.Principal(), kernel.RefTo(kernel.OrderEntity, cmd.OrderID()),
	)
	if err != nil {
		return err
	}

	if err = o.EnsureEditable(); err != nil {
		return err
	}

	changes, err := cmd.Changes()
	if err != nil {
		return err
	}

	change, err := applyOrderChanges(ctx, uow, cmd.Principal(), o, changes)
	if err != nil {
		return err
	}

	if err = commit(ctx, uow, "update order"); err != nil {
		return err
	}

	change.observe()
	return nil
}

// statusChange is an order transition made in the current transaction. A nil
// *statusChange means the status stayed.
type statusChange struct {
	from order.Status
	to   order.Status
}

func (c *statusChange) observe() {
	if c == nil {
		return
	}
	metrics.OrderTransitionsTotal.WithLabelValues(c.from.String(), c.to.String()).Inc()
}

// applyOrderChanges updates and stores o, recording a status change in the outbox.
func applyOrderChanges(
	ctx context.Context,
	uow OrderUoW,
	principal kernel.PrincipalID,
	o *order.Order,
	changes order.Changes,
) (*statusChange, error) {
	catalogRepo := uow.CatalogRepository()
	shop, err := catalogRepo.GetShop(ctx, o.ShopID())
	if err != nil {
		return nil, err
	}

	changes, err = withProducts(ctx, catalogRepo, changes)
	if err != nil {
		return nil, err
	}

	from := o.Status()
	if err = o.Update(principal, shop, changes); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if from == o.Status() {
		return nil, nil
	}
	if err = recordStatusChange(ctx, uow.OutboxRepository(), o, from); err != nil {
		return nil, err
	}
	return &statusChange{from: from, to: o.Status()}, nil
}

func recordStatusChange(ctx context.Context, outbox ports.OutboxRepository, o *order.Order, from order.Status) error {
	msg, err := newOutboxMessage(EventOrderStatusChanged, o.ID(), orderStatusChangedPayload{
		OrderID: o.ID().String(),
		ShopID:  o.ShopID().String(),
		From:    from.String(),
		To:      o.Status().String(),
	})
	if err != nil {
		return err
	}
	return outbox.Add(ctx, msg)
}
