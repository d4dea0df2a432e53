package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/core/domain/services"
)

type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	rater      shipment.Rater
}

func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory, rater shipment.Rater) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		rater:      rater,
	}
}

// Handle re-applies class rules and re-rates the packages. A shipment the
// principal does not own is reported as not found.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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
	s, err := services.AuthorizeAs[*shipment.Shipment](
		ctx, gate, cmd.Principal(), kernel.RefTo(kernel.ShipmentEntity, cmd.ShipmentID()),
	)
	if err != nil {
		return err
	}

	if err = s.Update(cmd.Details(), h.rater); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return err
	}

	return commit(ctx, uow, "update shipment")
}
