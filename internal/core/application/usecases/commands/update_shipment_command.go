package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand replaces the editable details of an owned shipment.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  kernel.PrincipalID
	shipmentID kernel.UUID
	details    shipment.Details

	guard guard.ConstructorGuard
}

func NewUpdateShipmentCommand(
	principal kernel.PrincipalID,
	shipmentID kernel.UUID,
	details shipment.Details,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validatePrincipal(principal),
		shipmentID.Validate(),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	cmd.principal = principal
	cmd.shipmentID = shipmentID
	return cmd, nil
}

func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

func (c UpdateShipmentCommand) Principal() kernel.PrincipalID { return c.principal }
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID       { return c.shipmentID }
func (c UpdateShipmentCommand) Details() shipment.Details     { return c.details }
