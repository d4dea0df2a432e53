package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand asks for a shipment to be removed. Depending on its state
// the shipment is deleted, canceled or left untouched.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  kernel.PrincipalID
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteShipmentCommand(principal kernel.PrincipalID, shipmentID kernel.UUID) (DeleteShipmentCommand, error) {
	if err := errors.Join(validatePrincipal(principal), shipmentID.Validate()); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return DeleteShipmentCommand{
		principal:  principal,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

func (c DeleteShipmentCommand) Principal() kernel.PrincipalID { return c.principal }
func (c DeleteShipmentCommand) ShipmentID() kernel.UUID       { return c.shipmentID }
