package ports

import (
	"context"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
)

// CatalogRepository exposes shops, products and product SKUs.
type CatalogRepository interface {
	AddShop(ctx context.Context, shop *catalog.Shop) error
	AddProduct(ctx context.Context, product *catalog.Product) error
	AddProductSku(ctx context.Context, sku *catalog.ProductSku) error

	GetShop(ctx context.Context, id kernel.UUID) (*catalog.Shop, error)
	GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
	GetProductSku(ctx context.Context, productID, shopID kernel.UUID) (*catalog.ProductSku, error)

	// FindProducts loads the products among ids that exist. Missing ids are absent from the map.
	FindProducts(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*catalog.Product, error)
}
