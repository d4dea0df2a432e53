package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetManifestQueryHandler struct {
	db *gorm.DB
}

func NewGetManifestQueryHandler(db *gorm.DB) GetManifestQueryHandler {
	return GetManifestQueryHandler{db: db}
}

func (h GetManifestQueryHandler) Handle(ctx context.Context, query GetManifestQuery) (ManifestView, error) {
	if err := query.Validate(); err != nil {
		return ManifestView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			entry_point,
			inbound_carrier,
			inbound_tracking,
			created_at
		FROM manifests
		WHERE id = ? AND owner_id = ?
	`, query.ManifestID().Bytes(), int64(query.Principal())).Rows()
	if err != nil {
		return ManifestView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ManifestView{}, err
		}
		return ManifestView{}, errs.NewObjectNotFoundError("manifest", query.ManifestID().String())
	}

	var (
		view ManifestView
		id   uuid.UUID
	)
	if err = rows.Scan(
		&id,
		&view.EntryPoint,
		&view.InboundCarrier,
		&view.InboundTracking,
		&view.CreatedAt,
	); err != nil {
		return ManifestView{}, err
	}
	_ = rows.Close()

	if view.ID, err = toKernelUUID(id); err != nil {
		return ManifestView{}, err
	}

	var raw []uuid.UUID
	if err = h.db.WithContext(ctx).
		Raw(`SELECT id FROM overpacks WHERE manifest_id = ? ORDER BY created_at, id`, id).
		Scan(&raw).Error; err != nil {
		return ManifestView{}, err
	}

	view.OverpackIDs = make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		opID, idErr := toKernelUUID(r)
		if idErr != nil {
			return ManifestView{}, idErr
		}
		view.OverpackIDs = append(view.OverpackIDs, opID)
	}
	view.TotalOverpacks = len(view.OverpackIDs)

	return view, nil
}
