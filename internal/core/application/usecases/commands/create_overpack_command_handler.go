package commands

import (
	"context"

	"backoffice/internal/core/domain/model/overpack"
)

type CreateOverpackCommandHandler struct {
	uowFactory OverpackUoWFactory
}

func NewCreateOverpackCommandHandler(uowFactory OverpackUoWFactory) CreateOverpackCommandHandler {
	return CreateOverpackCommandHandler{uowFactory: uowFactory}
}

// Handle creates the overpack and links the referenced shipments in one transaction.
// Refs that match none of the principal's shipments are ignored; a canceled or
// already overpacked shipment aborts the whole request.
func (h *CreateOverpackCommandHandler) Handle(ctx context.Context, cmd CreateOverpackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := overpack.NewOverpack(cmd.OverpackID(), cmd.Principal(), cmd.Details())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OverpackRepository().Add(ctx, o); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	idx, err := resolveShipments(ctx, shipmentRepo, cmd.Principal(), cmd.ShipmentRefs())
	if err != nil {
		return err
	}
	for _, s := range idx.pick(cmd.ShipmentRefs()) {
		if err = o.AddShipment(s); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return err
		}
	}

	return commit(ctx, uow, "create overpack")
}
