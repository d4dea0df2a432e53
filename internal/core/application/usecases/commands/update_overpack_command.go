package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/pkg/guard"
)

var ErrUpdateOverpackCommandIsNotConstructed = errors.New(
	"UpdateOverpackCommand must be created via NewUpdateOverpackCommand constructor",
)

// OverpackDetailsReader parses the requested overpack details. The handler
// calls it only once the overpack is known to be editable.
type OverpackDetailsReader func() (overpack.Details, error)

type UpdateOverpackCommand struct { //nolint:recvcheck //using for validation
	principal  kernel.PrincipalID
	overpackID kernel.UUID
	details    OverpackDetailsReader

	guard guard.ConstructorGuard
}

func NewUpdateOverpackCommand(
	principal kernel.PrincipalID,
	overpackID kernel.UUID,
	details OverpackDetailsReader,
) (UpdateOverpackCommand, error) {
	if err := errors.Join(
		validatePrincipal(principal), overpackID.Validate(), requireReader(details == nil, "details"),
	); err != nil {
		return UpdateOverpackCommand{}, err
	}

	return UpdateOverpackCommand{
		principal:  principal,
		overpackID: overpackID,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOverpackCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOverpackCommandIsNotConstructed)
}

func (c UpdateOverpackCommand) Principal() kernel.PrincipalID { return c.principal }
func (c UpdateOverpackCommand) OverpackID() kernel.UUID       { return c.overpackID }
func (c UpdateOverpackCommand) Details() (overpack.Details, error) {
	return c.details()
}
