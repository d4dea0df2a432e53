package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrPatchOrderStatusesCommandIsNotConstructed = errors.New(
	"PatchOrderStatusesCommand must be created via NewPatchOrderStatusesCommand constructor",
)

// OrderStatusEntry requests status for one order.
type OrderStatusEntry struct {
	OrderID kernel.UUID
	Status  order.Status
}

// OrderStatusResult reports the stored status after a bulk patch. Status is nil
// for orders the principal cannot see.
type OrderStatusResult struct {
	OrderID kernel.UUID
	Status  *order.Status
}

// PatchOrderStatusesCommand sets the status of several orders at once.
type PatchOrderStatusesCommand struct { //nolint:recvcheck //using for validation
	principal kernel.PrincipalID
	entries   []OrderStatusEntry

	guard guard.ConstructorGuard
}

func NewPatchOrderStatusesCommand(
	principal kernel.PrincipalID,
	entries []OrderStatusEntry,
) (PatchOrderStatusesCommand, error) {
	cmd := PatchOrderStatusesCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		validatePrincipal(principal),
		cmd.setEntries(entries),
	); err != nil {
		return PatchOrderStatusesCommand{}, err
	}

	cmd.principal = principal
	return cmd, nil
}

func (c PatchOrderStatusesCommand) Validate() error {
	return c.guard.Validate(ErrPatchOrderStatusesCommandIsNotConstructed)
}

func (c PatchOrderStatusesCommand) Principal() kernel.PrincipalID { return c.principal }
func (c PatchOrderStatusesCommand) Entries() []OrderStatusEntry   { return c.entries }

func (c *PatchOrderStatusesCommand) setEntries(entries []OrderStatusEntry) error {
	if len(entries) == 0 {
		return errs.NewValueIsRequiredError("orders")
	}
	for _, e := range entries {
		if err := e.OrderID.Validate(); err != nil {
			return err
		}
		if !e.Status.IsUserSettable() {
			return errs.NewValueIsInvalidError("status")
		}
	}
	c.entries = entries
	return nil
}
