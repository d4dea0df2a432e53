package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/core/domain/services"
)

type PatchOverpackShipmentsCommandHandler struct {
	uowFactory OverpackUoWFactory
}

func NewPatchOverpackShipmentsCommandHandler(uowFactory OverpackUoWFactory) PatchOverpackShipmentsCommandHandler {
	return PatchOverpackShipmentsCommandHandler{uowFactory: uowFactory}
}

// Handle applies the membership patch atomically: the first rejected shipment
// aborts the request and nothing is written.
func (h *PatchOverpackShipmentsCommandHandler) Handle(ctx context.Context, cmd PatchOverpackShipmentsCommand) error {
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

	if err = o.EnsureMutable(overpack.ActionChange); err != nil {
		return err
	}

	removalRefs, additionRefs, err := cmd.Membership()
	if err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	refs := append(append([]string{}, removalRefs...), additionRefs...)
	idx, err := resolveShipments(ctx, shipmentRepo, cmd.Principal(), refs)
	if err != nil {
		return err
	}

	removals := idx.pick(removalRefs)
	additions := idx.pick(additionRefs)

	if err = o.PatchMembership(removals, additions); err != nil {
		return err
	}

	touched := make(map[*shipment.Shipment]struct{}, len(removals)+len(additions))
	for _, s := range append(removals, additions...) {
		if _, done := touched[s]; done {
			continue
		}
		touched[s] = struct{}{}
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return err
		}
	}

	return commit(ctx, uow, "patch overpack shipments")
}
