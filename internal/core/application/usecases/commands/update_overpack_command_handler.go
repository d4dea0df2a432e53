package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/core/domain/services"
)

type UpdateOverpackCommandHandler struct {
	uowFactory OverpackUoWFactory
}

func NewUpdateOverpackCommandHandler(uowFactory OverpackUoWFactory) UpdateOverpackCommandHandler {
	return UpdateOverpackCommandHandler{uowFactory: uowFactory}
}

// Handle edits an overpack. A manifested overpack is rejected before the
// requested details are parsed or validated.
func (h *UpdateOverpackCommandHandler) Handle(ctx context.Context, cmd UpdateOverpackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	gate := services.NewOwnershipGate(uow.EntityFinder())
	o, err := services.AuthorizeAs[*overpack.Overpack](
		ctx, gate, cmd.Principal(), kernel.RefTo(kernel.OverpackEntity, cmd.OverpackID()),
	)
	if err != nil {
		return err
	}

	if err = o.EnsureMutable(overpack.ActionUpdate); err != nil {
		return err
	}

	details, err := cmd.Details()
	if err != nil {
		return err
	}

	if err = o.Update(details); err != nil {
		return err
	}

	if err = uow.OverpackRepository().Update(ctx, o); err != nil {
		return err
	}

	return commit(ctx, uow, "update overpack")
}
