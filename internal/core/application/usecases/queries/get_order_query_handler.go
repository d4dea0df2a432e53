package queries

import (
	"context"

	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle reads an order visible through one of the principal's shops.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		JOIN shops sh ON sh.id = o.shop_id
		WHERE o.id = ? AND sh.owner_id = ?
	`, query.OrderID().Bytes(), int64(query.Principal())).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	view, id, err := scanOrder(rows)
	if err != nil {
		return OrderView{}, err
	}
	_ = rows.Close()

	orders := []OrderView{view}
	if err = attachLineItems(ctx, h.db, orders, []uuid.UUID{id}); err != nil {
		return OrderView{}, err
	}
	return orders[0], nil
}
