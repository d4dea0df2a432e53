// Package catalogrepo persists shops, products and product SKUs.
package catalogrepo

import (
	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ShopDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID int64     `gorm:"not null;index"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Active  bool      `gorm:"not null;default:true"`
}

func (ShopDTO) TableName() string {
	return "shops"
}

type ProductDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID int64     `gorm:"not null;index"`
	Name    string    `gorm:"type:varchar(255);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// ProductSkuDTO links a product to a shop. Owners are not stored here; they are
// read from both parents so a disagreement stays visible.
type ProductSkuDTO struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID    uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (ProductSkuDTO) TableName() string {
	return "products_skus"
}

type productSkuRow struct {
	ProductID    uuid.UUID
	ShopID       uuid.UUID
	ProductOwner int64
	ShopOwner    int64
}

func shopFromDomain(s *catalog.Shop) ShopDTO {
	return ShopDTO{
		ID:      s.ID().Bytes(),
		OwnerID: int64(s.Owner()),
		Name:    s.Name(),
		Active:  s.IsActive(),
	}
}

func shopToDomain(dto ShopDTO) (*catalog.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.RestoreShop(id, kernel.PrincipalID(dto.OwnerID), dto.Name, dto.Active)
}

func productFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:      p.ID().Bytes(),
		OwnerID: int64(p.Owner()),
		Name:    p.Name(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewProduct(id, kernel.PrincipalID(dto.OwnerID), dto.Name)
}

func skuToDomain(row productSkuRow) (*catalog.ProductSku, error) {
	productID, err := kernel.UUIDFromBytes(row.ProductID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(row.ShopID[:])
	if err != nil {
		return nil, err
	}
	return catalog.RestoreProductSku(
		productID, shopID,
		kernel.PrincipalID(row.ProductOwner), kernel.PrincipalID(row.ShopOwner),
	), nil
}
