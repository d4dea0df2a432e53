package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/core/domain/services"
)

// DeleteShipmentCommandHandler applies the cancel-or-delete decision.
//
// Example:
//
//	disposal, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // errs.ErrStateConflict when the shipment can be neither
//	}
//	if msg := disposal.Message(); msg != "" {
//	    fmt.Println(msg)
//	}
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) (shipment.Disposal, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.DisposalNone, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.DisposalNone, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	gate := services.NewOwnershipGate(uow.EntityFinder())
	s, err := services.AuthorizeAs[*shipment.Shipment](
		ctx, gate, cmd.Principal(), kernel.RefTo(kernel.ShipmentEntity, cmd.ShipmentID()),
	)
	if err != nil {
		return shipment.DisposalNone, err
	}

	disposal, err := s.CancelOrDelete()
	if err != nil {
		return shipment.DisposalNone, err
	}

	repo := uow.ShipmentRepository()
	eventType := EventShipmentCanceled
	if disposal == shipment.DisposalDelete {
		eventType = EventShipmentDeleted
		err = repo.Delete(ctx, s.ID())
	} else {
		err = repo.Update(ctx, s)
	}
	if err != nil {
		return shipment.DisposalNone, err
	}

	msg, err := newOutboxMessage(eventType, s.ID(), shipmentDisposedPayload{
		ShipmentID:     s.ID().String(),
		Owner:          int64(s.Owner()),
		TrackingNumber: s.TrackingNumber(),
		LabelRetained:  disposal == shipment.DisposalCancelLabelRetained,
	})
	if err != nil {
		return shipment.DisposalNone, err
	}
	if err = uow.OutboxRepository().Add(ctx, msg); err != nil {
		return shipment.DisposalNone, err
	}

	if err = commit(ctx, uow, "delete shipment"); err != nil {
		return shipment.DisposalNone, err
	}

	return disposal, nil
}
