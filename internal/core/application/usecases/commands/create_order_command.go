package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order on a shop owned by the principal.
// Line item products are referenced by id and loaded by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(principal, kernel.NewUUID(), shopID, "#1001", order.Changes{
//	    LineItems: []order.LineItemRequest{{ProductID: productID, SKU: "MUG-1", Quantity: 2}},
//	})
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	principal   kernel.PrincipalID
	orderID     kernel.UUID
	shopID      kernel.UUID
	shopOrderID string
	changes     order.Changes

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	principal kernel.PrincipalID,
	orderID kernel.UUID,
	shopID kernel.UUID,
	shopOrderID string,
	changes order.Changes,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		validatePrincipal(principal),
		orderID.Validate(),
		shopID.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		principal:   principal,
		orderID:     orderID,
		shopID:      shopID,
		shopOrderID: shopOrderID,
		changes:     changes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Principal() kernel.PrincipalID { return c.principal }
func (c CreateOrderCommand) OrderID() kernel.UUID          { return c.orderID }
func (c CreateOrderCommand) ShopID() kernel.UUID           { return c.shopID }
func (c CreateOrderCommand) ShopOrderID() string           { return c.shopOrderID }
func (c CreateOrderCommand) Changes() order.Changes        { return c.changes }
