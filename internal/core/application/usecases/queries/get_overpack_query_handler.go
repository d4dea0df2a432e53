package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOverpackQueryHandler struct {
	db *gorm.DB
}

func NewGetOverpackQueryHandler(db *gorm.DB) GetOverpackQueryHandler {
	return GetOverpackQueryHandler{db: db}
}

// Handle reads the overpack row and derives membership from shipments.overpack_id.
func (h GetOverpackQueryHandler) Handle(ctx context.Context, query GetOverpackQuery) (OverpackView, error) {
	if err := query.Validate(); err != nil {
		return OverpackView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			entry_point,
			service,
			carrier,
			terms,
			height,
			length,
			width,
			weight,
			manifest_id,
			created_at
		FROM overpacks
		WHERE id = ? AND owner_id = ?
	`, query.OverpackID().Bytes(), int64(query.Principal())).Rows()
	if err != nil {
		return OverpackView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OverpackView{}, err
		}
		return OverpackView{}, errs.NewObjectNotFoundError("overpack", query.OverpackID().String())
	}

	var (
		view       OverpackView
		id         uuid.UUID
		manifestID uuid.NullUUID
	)
	if err = rows.Scan(
		&id,
		&view.EntryPoint,
		&view.Service,
		&view.Carrier,
		&view.Terms,
		&view.Height,
		&view.Length,
		&view.Width,
		&view.Weight,
		&manifestID,
		&view.CreatedAt,
	); err != nil {
		return OverpackView{}, err
	}
	_ = rows.Close()

	if view.ID, err = toKernelUUID(id); err != nil {
		return OverpackView{}, err
	}
	if view.ManifestID, err = toKernelUUIDPtr(manifestID); err != nil {
		return OverpackView{}, err
	}

	view.ShipmentIDs, err = h.memberIDs(ctx, id)
	if err != nil {
		return OverpackView{}, err
	}
	view.TotalShipments = len(view.ShipmentIDs)

	return view, nil
}

func (h GetOverpackQueryHandler) memberIDs(ctx context.Context, overpackID uuid.UUID) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	if err := h.db.WithContext(ctx).
		Raw(`SELECT id FROM shipments WHERE overpack_id = ? ORDER BY created_at, id`, overpackID).
		Scan(&raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := toKernelUUID(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
