// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of work,
// pass the ownership gate, mutate the aggregates, persist, record outbox events and
// commit. Nothing is reported as done before Commit succeeds.
package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each feature asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	EntityFinderFactory interface {
		EntityFinder() ports.EntityFinder
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	OverpackRepoFactory interface {
		OverpackRepository() ports.OverpackRepository
	}

	ManifestRepoFactory interface {
		ManifestRepository() ports.ManifestRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// ShipmentUoW serves shipment create, update and delete.
	ShipmentUoW interface {
		TxManager
		EntityFinderFactory
		ShipmentRepoFactory
		OutboxRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// OverpackUoW serves overpack create, update, delete and membership patches.
	OverpackUoW interface {
		TxManager
		EntityFinderFactory
		ShipmentRepoFactory
		OverpackRepoFactory
	}

	OverpackUoWFactory interface {
		Create() OverpackUoW
	}

	// ManifestUoW serves manifest creation.
	ManifestUoW interface {
		TxManager
		EntityFinderFactory
		OverpackRepoFactory
		ManifestRepoFactory
		OutboxRepoFactory
	}

	ManifestUoWFactory interface {
		Create() ManifestUoW
	}

	// OrderUoW serves order create, update, delete and bulk status changes.
	OrderUoW interface {
		TxManager
		EntityFinderFactory
		OrderRepoFactory
		CatalogRepoFactory
		OutboxRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OutboxUoW serves the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
