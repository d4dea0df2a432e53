package commands

import (
	"context"

	"backoffice/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler persists a new shipment with a fresh tracking number.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	rater      shipment.Rater
}

func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, rater shipment.Rater) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		rater:      rater,
	}
}

// Handle returns the tracking number assigned to the new shipment.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	s, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.Principal(),
		shipment.NewTrackingNumber(),
		cmd.Details(),
		h.rater,
	)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return "", err
	}

	if err = commit(ctx, uow, "create shipment"); err != nil {
		return "", err
	}

	return s.TrackingNumber(), nil
}
