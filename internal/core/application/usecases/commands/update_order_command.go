package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderChangesReader parses the requested order edit. The handler calls it only
// once the stored status allows edits.
type OrderChangesReader func() (order.Changes, error)

type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	principal kernel.PrincipalID
	orderID   kernel.UUID
	changes   OrderChangesReader

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	principal kernel.PrincipalID,
	orderID kernel.UUID,
	changes OrderChangesReader,
) (UpdateOrderCommand, error) {
	if err := errors.Join(
		validatePrincipal(principal), orderID.Validate(), requireReader(changes == nil, "order"),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		principal: principal,
		orderID:   orderID,
		changes:   changes,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Principal() kernel.PrincipalID { return c.principal }
func (c UpdateOrderCommand) OrderID() kernel.UUID          { return c.orderID }
func (c UpdateOrderCommand) Changes() (order.Changes, error) {
	return c.changes()
}
