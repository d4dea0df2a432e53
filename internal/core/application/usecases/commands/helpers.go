package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

func validatePrincipal(p kernel.PrincipalID) error {
	if !p.IsAuthenticated() {
		return errs.NewValueIsRequiredError("principal")
	}
	return nil
}

// commit reports a failed commit as a persistence failure for operation.
func commit(ctx context.Context, tx TxManager, operation string) error {
	if err := tx.Commit(ctx); err != nil {
		return errs.NewPersistenceError(operation, err)
	}
	return nil
}

func requireReader(missing bool, name string) error {
	if missing {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
