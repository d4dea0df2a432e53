package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
)

// withProducts loads the products named by the requested line items. Unknown
// products stay nil and are rejected by the order's own validation.
func withProducts(ctx context.Context, repo ports.CatalogRepository, changes order.Changes) (order.Changes, error) {
	if len(changes.LineItems) == 0 {
		return changes, nil
	}

	ids := make([]kernel.UUID, 0, len(changes.LineItems))
	for _, li := range changes.LineItems {
		ids = append(ids, li.ProductID)
	}

	products, err := repo.FindProducts(ctx, ids)
	if err != nil {
		return order.Changes{}, err
	}

	items := make([]order.LineItemRequest, len(changes.LineItems))
	for i, li := range changes.LineItems {
		li.Product = products[li.ProductID]
		items[i] = li
	}
	changes.LineItems = items
	return changes, nil
}
