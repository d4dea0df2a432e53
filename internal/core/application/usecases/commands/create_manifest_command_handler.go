package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/manifest"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/metrics"
)

// CreateManifestCommandHandler finalizes a manifest in a single transaction.
// Every overpack is loaded and checked before any of them is linked; a single
// rejection leaves the database untouched.
type CreateManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
	finalizer  services.ManifestFinalizer
}

func NewCreateManifestCommandHandler(uowFactory ManifestUoWFactory) CreateManifestCommandHandler {
	return CreateManifestCommandHandler{
		uowFactory: uowFactory,
		finalizer:  services.NewManifestFinalizer(),
	}
}

func (h *CreateManifestCommandHandler) Handle(ctx context.Context, cmd CreateManifestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := manifest.NewManifest(cmd.ManifestID(), cmd.Principal(), cmd.InboundCarrier(), cmd.InboundTracking())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	gate := services.NewOwnershipGate(uow.EntityFinder())
	overpackRepo := uow.OverpackRepository()

	candidates := make([]manifest.Candidate, 0, len(cmd.OverpackIDs()))
	for _, id := range cmd.OverpackIDs() {
		o, err := services.AuthorizeAs[*overpack.Overpack](
			ctx, gate, cmd.Principal(), kernel.RefTo(kernel.OverpackEntity, id),
		)
		if err != nil {
			return err
		}

		total, err := overpackRepo.CountShipments(ctx, id)
		if err != nil {
			return err
		}
		candidates = append(candidates, manifest.Candidate{Overpack: o, TotalShipments: total})
	}

	linked, err := h.finalizer.Finalize(m, candidates)
	if err != nil {
		return err
	}

	if err = uow.ManifestRepository().Add(ctx, m); err != nil {
		return err
	}

	overpackIDs := make([]string, 0, len(linked))
	for _, o := range linked {
		if err = overpackRepo.Update(ctx, o); err != nil {
			return err
		}
		overpackIDs = append(overpackIDs, o.ID().String())
	}

	msg, err := newOutboxMessage(EventManifestFinalized, m.ID(), manifestFinalizedPayload{
		ManifestID:  m.ID().String(),
		Owner:       int64(m.Owner()),
		EntryPoint:  m.EntryPoint().Code(),
		OverpackIDs: overpackIDs,
	})
	if err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, msg); err != nil {
		return err
	}

	if err = commit(ctx, uow, "create manifest"); err != nil {
		return err
	}

	metrics.ManifestsFinalizedTotal.Inc()
	metrics.OverpacksManifestedTotal.Add(float64(len(linked)))
	return nil
}
