package services

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// OwnershipGate decides whether a principal may read or mutate an entity.
//
// Absent and foreign entities are both reported as allowed=false; err is reserved
// for infrastructure failures. Callers must surface a denial as "not found" so that
// the existence of other tenants' data does not leak.
//
// Example:
//
//	gate := services.NewOwnershipGate(uow.EntityFinder())
//	entity, allowed, err := gate.Authorize(ctx, principal, kernel.RefTo(kernel.OverpackEntity, id))
//	if err != nil {
//	    return err
//	}
//	if !allowed {
//	    return errs.NewObjectNotFoundError("overpack", id)
//	}
type OwnershipGate struct {
	finder ports.EntityFinder
}

func NewOwnershipGate(finder ports.EntityFinder) OwnershipGate {
	return OwnershipGate{finder: finder}
}

// Authorize resolves ref and checks that principal is its single owner.
// Ambiguous ownership is denied exactly like missing ownership.
func (g OwnershipGate) Authorize(
	ctx context.Context,
	principal kernel.PrincipalID,
	ref kernel.EntityRef,
) (kernel.Ownable, bool, error) {
	if !principal.IsAuthenticated() {
		return nil, false, nil
	}

	entity, err := g.finder.Find(ctx, ref)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if entity == nil {
		return nil, false, nil
	}

	if !entity.ResolveOwner().Is(principal) {
		return nil, false, nil
	}
	return entity, true, nil
}

// AuthorizeAs runs the gate and returns the entity as T. A denial, or an entity
// of an unexpected type, becomes an errs.ObjectNotFoundError.
func AuthorizeAs[T kernel.Ownable](
	ctx context.Context,
	gate OwnershipGate,
	principal kernel.PrincipalID,
	ref kernel.EntityRef,
) (T, error) {
	var zero T

	entity, allowed, err := gate.Authorize(ctx, principal, ref)
	if err != nil {
		return zero, err
	}
	if !allowed {
		return zero, errs.NewObjectNotFoundError(ref.Type().String(), ref.String())
	}

	typed, ok := entity.(T)
	if !ok {
		return zero, errs.NewObjectNotFoundError(ref.Type().String(), ref.String())
	}
	return typed, nil
}
