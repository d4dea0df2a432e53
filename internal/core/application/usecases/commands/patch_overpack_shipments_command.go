package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrPatchOverpackShipmentsCommandIsNotConstructed = errors.New(
	"PatchOverpackShipmentsCommand must be created via NewPatchOverpackShipmentsCommand constructor",
)

// MembershipReader parses the requested removals and additions.
type MembershipReader func() (removals, additions []string, err error)

// PatchOverpackShipmentsCommand changes overpack membership. Removals are applied
// before additions, so a shipment listed in both ends up a member.
type PatchOverpackShipmentsCommand struct { //nolint:recvcheck //using for validation
	principal  kernel.PrincipalID
	overpackID kernel.UUID
	membership MembershipReader

	guard guard.ConstructorGuard
}

func NewPatchOverpackShipmentsCommand(
	principal kernel.PrincipalID,
	overpackID kernel.UUID,
	membership MembershipReader,
) (PatchOverpackShipmentsCommand, error) {
	if err := errors.Join(
		validatePrincipal(principal), overpackID.Validate(), requireReader(membership == nil, "shipments"),
	); err != nil {
		return PatchOverpackShipmentsCommand{}, err
	}

	return PatchOverpackShipmentsCommand{
		principal:  principal,
		overpackID: overpackID,
		membership: membership,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c PatchOverpackShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrPatchOverpackShipmentsCommandIsNotConstructed)
}

func (c PatchOverpackShipmentsCommand) Principal() kernel.PrincipalID { return c.principal }
func (c PatchOverpackShipmentsCommand) OverpackID() kernel.UUID       { return c.overpackID }

func (c PatchOverpackShipmentsCommand) Membership() (removals, additions []string, err error) {
	return c.membership()
}
