// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Line items are a child table replaced as a whole on every update.
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The owner is not stored; it is read from the shop on load.
type OrderDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ShopID          uuid.UUID     `gorm:"type:uuid;not null;index"`
	ShopOrderID     string        `gorm:"type:varchar(128)"`
	Status          int           `gorm:"type:smallint;not null;index"`
	Priority        int           `gorm:"type:smallint;not null;default:5"`
	PartialOK       bool          `gorm:"not null;default:false"`
	Service         string        `gorm:"type:varchar(64)"`
	ShippingAddress AddressDTO    `gorm:"embedded;embeddedPrefix:shipping_"`
	LineItems       []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	Name       string `gorm:"type:varchar(255)"`
	Company    string `gorm:"type:varchar(255)"`
	Street1    string `gorm:"type:varchar(255)"`
	Street2    string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(128)"`
	Province   string `gorm:"type:varchar(128)"`
	PostalCode string `gorm:"type:varchar(32)"`
	Country    string `gorm:"type:varchar(2)"`
}

// LineItemDTO is keyed by order and product: an order holds one line per product.
type LineItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU       string    `gorm:"type:varchar(128)"`
	Quantity  int       `gorm:"not null;default:0"`
	SoldFor   float64   `gorm:"not null;default:0"`
	Position  int       `gorm:"not null;default:0"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(o.LineItems()))
	for i, li := range o.LineItems() {
		items = append(items, LineItemDTO{
			OrderID:   o.ID().Bytes(),
			ProductID: li.ProductID().Bytes(),
			SKU:       li.SKU(),
			Quantity:  li.Quantity(),
			SoldFor:   li.SoldFor(),
			Position:  i,
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		ShopID:          o.ShopID().Bytes(),
		ShopOrderID:     o.ShopOrderID(),
		Status:          int(o.Status()),
		Priority:        o.Priority(),
		PartialOK:       o.PartialOK(),
		Service:         o.Service(),
		ShippingAddress: AddressDTO(o.ShippingAddress()),
		LineItems:       items,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

// toDomain rebuilds an order. A row without a stored status is read as Processing.
func toDomain(dto OrderDTO, shopOwner int64) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		productID, pErr := kernel.UUIDFromBytes(li.ProductID[:])
		if pErr != nil {
			return nil, pErr
		}
		items = append(items, order.RestoreLineItem(productID, li.SKU, li.Quantity, li.SoldFor))
	}

	status := order.Status(dto.Status)
	if status == order.Unknown {
		status = order.Processing
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		ShopID:          shopID,
		ShopOwner:       kernel.PrincipalID(shopOwner),
		ShopOrderID:     dto.ShopOrderID,
		Status:          status,
		Priority:        dto.Priority,
		PartialOK:       dto.PartialOK,
		Service:         dto.Service,
		ShippingAddress: order.Address(dto.ShippingAddress),
		LineItems:       items,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
