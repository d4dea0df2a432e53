package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"
)

// OverpackRepository defines the persistence contract for overpack aggregates.
// Membership is stored on shipments, so the overpack row never lists its members.
type OverpackRepository interface {
	Add(ctx context.Context, aggregate *overpack.Overpack) error
	Update(ctx context.Context, aggregate *overpack.Overpack) error
	Delete(ctx context.Context, id kernel.UUID) error

	// Get loads an overpack and locks its row, so the manifest freeze is read fresh.
	Get(ctx context.Context, id kernel.UUID) (*overpack.Overpack, error)

	// CountShipments returns how many shipments currently reference the overpack.
	CountShipments(ctx context.Context, id kernel.UUID) (int, error)
}
