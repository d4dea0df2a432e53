package queries

import (
	"context"
	"database/sql"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderView struct {
	ID              kernel.UUID
	ShopID          kernel.UUID
	ShopOrderID     string
	Status          string
	Priority        int
	PartialOK       bool
	Service         string
	ShippingAddress order.Address
	LineItems       []OrderLineItemView
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderLineItemView struct {
	ProductID kernel.UUID
	SKU       string
	Quantity  int
	SoldFor   float64
}

const orderColumns = `
	o.id,
	o.shop_id,
	o.shop_order_id,
	o.status,
	o.priority,
	o.partial_ok,
	o.service,
	o.shipping_name,
	o.shipping_company,
	o.shipping_street1,
	o.shipping_street2,
	o.shipping_city,
	o.shipping_province,
	o.shipping_postal_code,
	o.shipping_country,
	o.created_at,
	o.updated_at`

func scanOrder(rows *sql.Rows) (OrderView, uuid.UUID, error) {
	var (
		view   OrderView
		id     uuid.UUID
		shopID uuid.UUID
		status int
		a      = &view.ShippingAddress
	)

	if err := rows.Scan(
		&id,
		&shopID,
		&view.ShopOrderID,
		&status,
		&view.Priority,
		&view.PartialOK,
		&view.Service,
		&a.Name,
		&a.Company,
		&a.Street1,
		&a.Street2,
		&a.City,
		&a.Province,
		&a.PostalCode,
		&a.Country,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return OrderView{}, uuid.Nil, err
	}

	var err error
	if view.ID, err = toKernelUUID(id); err != nil {
		return OrderView{}, uuid.Nil, err
	}
	if view.ShopID, err = toKernelUUID(shopID); err != nil {
		return OrderView{}, uuid.Nil, err
	}

	s := order.Status(status)
	if s == order.Unknown {
		s = order.Processing
	}
	view.Status = s.String()
	view.LineItems = make([]OrderLineItemView, 0)

	return view, id, nil
}

// attachLineItems loads the line items of every order in one round trip.
func attachLineItems(ctx context.Context, db *gorm.DB, orders []OrderView, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, product_id, sku, quantity, sold_for
		FROM order_line_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	index := make(map[uuid.UUID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	for rows.Next() {
		var (
			orderID   uuid.UUID
			productID uuid.UUID
			item      OrderLineItemView
		)
		if err = rows.Scan(&orderID, &productID, &item.SKU, &item.Quantity, &item.SoldFor); err != nil {
			return err
		}
		if item.ProductID, err = toKernelUUID(productID); err != nil {
			return err
		}
		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].LineItems = append(orders[i].LineItems, item)
	}
	return rows.Err()
}
