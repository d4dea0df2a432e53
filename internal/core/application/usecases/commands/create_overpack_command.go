package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/pkg/guard"
)

var ErrCreateOverpackCommandIsNotConstructed = errors.New(
	"CreateOverpackCommand must be created via NewCreateOverpackCommand constructor",
)

// CreateOverpackCommand creates an overpack and, optionally, links the shipments
// referenced by id or tracking number.
type CreateOverpackCommand struct { //nolint:recvcheck //using for validation
	principal    kernel.PrincipalID
	overpackID   kernel.UUID
	details      overpack.Details
	shipmentRefs []string

	guard guard.ConstructorGuard
}

func NewCreateOverpackCommand(
	principal kernel.PrincipalID,
	overpackID kernel.UUID,
	details overpack.Details,
	shipmentRefs []string,
) (CreateOverpackCommand, error) {
	if err := errors.Join(validatePrincipal(principal), overpackID.Validate()); err != nil {
		return CreateOverpackCommand{}, err
	}

	return CreateOverpackCommand{
		principal:    principal,
		overpackID:   overpackID,
		details:      details,
		shipmentRefs: shipmentRefs,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOverpackCommand) Validate() error {
	return c.guard.Validate(ErrCreateOverpackCommandIsNotConstructed)
}

func (c CreateOverpackCommand) Principal() kernel.PrincipalID { return c.principal }
func (c CreateOverpackCommand) OverpackID() kernel.UUID       { return c.overpackID }
func (c CreateOverpackCommand) Details() overpack.Details     { return c.details }
func (c CreateOverpackCommand) ShipmentRefs() []string        { return c.shipmentRefs }
