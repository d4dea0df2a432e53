package catalogrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCatalogRepository) AddShop(ctx context.Context, shop *catalog.Shop) error {
	if err := shop.Validate(); err != nil {
		return err
	}

	dto := shopFromDomain(shop)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(shop.ID(), shop)
	return nil
}

func (r *GormCatalogRepository) AddProduct(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(product.ID(), product)
	return nil
}

func (r *GormCatalogRepository) AddProductSku(ctx context.Context, sku *catalog.ProductSku) error {
	dto := ProductSkuDTO{
		ProductID: sku.ProductID().Bytes(),
		ShopID:    sku.ShopID().Bytes(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetShop loads a shop and locks it, so an order write sees the current active flag.
func (r *GormCatalogRepository) GetShop(ctx context.Context, id kernel.UUID) (*catalog.Shop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShopDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", id.String())
		}
		return nil, err
	}

	return shopToDomain(dto)
}

func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

func (r *GormCatalogRepository) GetProductSku(ctx context.Context, productID, shopID kernel.UUID) (*catalog.ProductSku, error) {
	if err := errors.Join(productID.Validate(), shopID.Validate()); err != nil {
		return nil, err
	}

	var row productSkuRow
	err := r.db.WithContext(ctx).
		Table("products_skus AS ps").
		Select("ps.product_id, ps.shop_id, p.owner_id AS product_owner, s.owner_id AS shop_owner").
		Joins("JOIN products p ON p.id = ps.product_id").
		Joins("JOIN shops s ON s.id = ps.shop_id").
		Where("ps.product_id = ? AND ps.shop_id = ?", productID.Bytes(), shopID.Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product_sku", productID.String()+"/"+shopID.String())
		}
		return nil, err
	}

	return skuToDomain(row)
}

func (r *GormCatalogRepository) FindProducts(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*catalog.Product, error) {
	found := make(map[kernel.UUID]*catalog.Product, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		found[p.ID()] = p
	}
	return found, nil
}
