package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"
)

type PatchOrderStatusesCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPatchOrderStatusesCommandHandler(uowFactory OrderUoWFactory) PatchOrderStatusesCommandHandler {
	return PatchOrderStatusesCommandHandler{uowFactory: uowFactory}
}

// Handle updates every visible order in one transaction and returns one result
// per entry in request order. Invisible orders are skipped with a nil status;
// when none is visible the whole request is not found. A rejected transition on
// any visible order fails the batch.
func (h *PatchOrderStatusesCommandHandler) Handle(
	ctx context.Context,
	cmd PatchOrderStatusesCommand,
) ([]OrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	gate := services.NewOwnershipGate(uow.EntityFinder())
	results := make([]OrderStatusResult, 0, len(cmd.Entries()))
	changes := make([]*statusChange, 0, len(cmd.Entries()))
	updated := 0

	for _, entry := range cmd.Entries() {
		entity, allowed, err := gate.Authorize(ctx, cmd.Principal(), kernel.RefTo(kernel.OrderEntity, entry.OrderID))
		if err != nil {
			return nil, err
		}
		o, ok := entity.(*order.Order)
		if !allowed || !ok {
			results = append(results, OrderStatusResult{OrderID: entry.OrderID})
			continue
		}

		change, err := applyOrderChanges(ctx, uow, cmd.Principal(), o, order.Changes{Status: entry.Status})
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)

		status := o.Status()
		results = append(results, OrderStatusResult{OrderID: entry.OrderID, Status: &status})
		updated++
	}

	if updated == 0 {
		return nil, errs.NewObjectNotFoundError("orders", "")
	}

	if err := commit(ctx, uow, "patch order statuses"); err != nil {
		return nil, err
	}

	for _, c := range changes {
		c.observe()
	}

	return results, nil
}
