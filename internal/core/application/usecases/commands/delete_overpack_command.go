package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrDeleteOverpackCommandIsNotConstructed = errors.New(
	"DeleteOverpackCommand must be created via NewDeleteOverpackCommand constructor",
)

type DeleteOverpackCommand struct { //nolint:recvcheck //using for validation
	principal  kernel.PrincipalID
	overpackID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOverpackCommand(principal kernel.PrincipalID, overpackID kernel.UUID) (DeleteOverpackCommand, error) {
	if err := errors.Join(validatePrincipal(principal), overpackID.Validate()); err != nil {
		return DeleteOverpackCommand{}, err
	}

	return DeleteOverpackCommand{
		principal:  principal,
		overpackID: overpackID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOverpackCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOverpackCommandIsNotConstructed)
}

func (c DeleteOverpackCommand) Principal() kernel.PrincipalID { return c.principal }
func (c DeleteOverpackCommand) OverpackID() kernel.UUID       { return c.overpackID }
