package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Line items are stored and replaced together with their order.
type OrderRepository interface {
	// Add persists a new order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order row and replaces its line items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order and its line items.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get loads an order with its shop owner and line items and locks the order row.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
