package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event recorded in the same transaction as the state change
// that produced it.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores pending events until the relay publishes them.
type OutboxRepository interface {
	Add(ctx context.Context, msg OutboxMessage) error

	// FetchPending returns up to limit unpublished messages in occurrence order, skipping
	// rows locked by a concurrent relay.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID) error
}

// EventPublisher delivers outbox messages to the event transport.
type EventPublisher interface {
	Publish(ctx context.Context, msgs []OutboxMessage) error
}
