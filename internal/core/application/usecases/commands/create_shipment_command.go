package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand registers a new shipment for the calling principal.
// Class rules and package rating run inside the shipment aggregate.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(principal, kernel.NewUUID(), shipment.Details{
//	    EntryPoint: ep,
//	    Class:      shipment.ECommerce,
//	    Packages:   []shipment.Package{pkg},
//	})
//	if err != nil {
//	    return err
//	}
//	trackingNumber, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  kernel.PrincipalID
	shipmentID kernel.UUID
	details    shipment.Details

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(
	principal kernel.PrincipalID,
	shipmentID kernel.UUID,
	details shipment.Details,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Principal() kernel.PrincipalID { return c.principal }
func (c CreateShipmentCommand) ShipmentID() kernel.UUID       { return c.shipmentID }
func (c CreateShipmentCommand) Details() shipment.Details     { return c.details }

func (c *CreateShipmentCommand) setPrincipal(p kernel.PrincipalID) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}
