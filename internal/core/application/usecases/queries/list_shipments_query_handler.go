package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM shipments WHERE owner_id = ?`, int64(query.Principal())).
		Scan(&total).Error; err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments s
		WHERE s.owner_id = ?
		ORDER BY s.created_at DESC, s.id
		LIMIT ? OFFSET ?
	`, int64(query.Principal()), query.Page().Limit(), query.Page().Offset()).Rows()
	if err != nil {
		return ListShipmentsQueryResponse{}, err
	}
	defer rows.Close()

	shipments := make([]ShipmentView, 0)
	for rows.Next() {
		view, scanErr := scanShipment(rows)
		if scanErr != nil {
			return ListShipmentsQueryResponse{}, scanErr
		}
		shipments = append(shipments, view)
	}
	if err = rows.Err(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	return ListShipmentsQueryResponse{
		Shipments:      shipments,
		TotalPages:     query.Page().TotalPages(int(total)),
		TotalShipments: int(total),
	}, nil
}
