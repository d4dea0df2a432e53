package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment, including its overpack link.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Delete removes the shipment row. Only test shipments without a label reach this.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get loads a shipment and locks its row for the rest of the transaction.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// ResolveOwned returns the owner's shipments matching any of refs, where each ref is
	// either a shipment id or a tracking number. Refs that match nothing are skipped.
	ResolveOwned(ctx context.Context, owner kernel.PrincipalID, refs []string) ([]*shipment.Shipment, error)

	// ListByOverpack returns the current members of an overpack.
	ListByOverpack(ctx context.Context, overpackID kernel.UUID) ([]*shipment.Shipment, error)
}
