package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders o
		JOIN shops sh ON sh.id = o.shop_id
		WHERE sh.owner_id = ?
	`, int64(query.Principal())).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		JOIN shops sh ON sh.id = o.shop_id
		WHERE sh.owner_id = ?
		ORDER BY o.priority, o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, int64(query.Principal()), query.Page().Limit(), query.Page().Offset()).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		view, id, scanErr := scanOrder(rows)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, view)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	_ = rows.Close()

	if err = attachLineItems(ctx, h.db, orders, ids); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders:      orders,
		TotalPages:  query.Page().TotalPages(int(total)),
		TotalOrders: int(total),
	}, nil
}
