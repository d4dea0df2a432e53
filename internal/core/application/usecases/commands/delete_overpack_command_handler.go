package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/core/domain/services"
)

type DeleteOverpackCommandHandler struct {
	uowFactory OverpackUoWFactory
}

func NewDeleteOverpackCommandHandler(uowFactory OverpackUoWFactory) DeleteOverpackCommandHandler {
	return DeleteOverpackCommandHandler{uowFactory: uowFactory}
}

// Handle detaches every member shipment and removes the overpack.
// Manifested overpacks cannot be deleted.
func (h *DeleteOverpackCommandHandler) Handle(ctx context.Context, cmd DeleteOverpackCommand) error {
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
	o, err := services.AuthorizeAs[*overpack.Overpack](
		ctx, gate, cmd.Principal(), kernel.RefTo(kernel.OverpackEntity, cmd.OverpackID()),
	)
	if err != nil {
		return err
	}

	if err = o.EnsureMutable(overpack.ActionDelete); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	members, err := shipmentRepo.ListByOverpack(ctx, o.ID())
	if err != nil {
		return err
	}
	for _, s := range members {
		if err = o.RemoveShipment(s); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return err
		}
	}

	if err = uow.OverpackRepository().Delete(ctx, o.ID()); err != nil {
		return err
	}

	return commit(ctx, uow, "delete overpack")
}
