package order

import "backoffice/internal/core/domain/model/kernel"

// LineItem is a quantity of one product sold within an order.
type LineItem struct {
	productID kernel.UUID
	sku       string
	quantity  int
	soldFor   float64
}

func RestoreLineItem(productID kernel.UUID, sku string, quantity int, soldFor float64) LineItem {
	return LineItem{productID: productID, sku: sku, quantity: quantity, soldFor: soldFor}
}

func (l LineItem) ProductID() kernel.UUID { return l.productID }
func (l LineItem) SKU() string            { return l.sku }
func (l LineItem) Quantity() int          { return l.quantity }
func (l LineItem) SoldFor() float64       { return l.soldFor }
