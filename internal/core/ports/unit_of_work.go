package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Nothing a command changes is
// durable before Commit returns nil.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories returned below use the transaction started by Begin.
	EntityFinder() EntityFinder
	ShipmentRepository() ShipmentRepository
	OverpackRepository() OverpackRepository
	ManifestRepository() ManifestRepository
	OrderRepository() OrderRepository
	CatalogRepository() CatalogRepository
	OutboxRepository() OutboxRepository
}
