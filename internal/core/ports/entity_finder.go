package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
)

// EntityFinder loads any ownable entity by reference, locking it for the current
// transaction. An absent entity yields an errs.ObjectNotFoundError.
type EntityFinder interface {
	Find(ctx context.Context, ref kernel.EntityRef) (kernel.Ownable, error)
}
