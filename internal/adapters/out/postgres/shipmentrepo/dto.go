// Package shipmentrepo persists shipment aggregates. Packages and customs line items
// are owned sub-collections stored as JSON columns on the shipment row; labels and
// fulfillments live in their own tables and are only read here.
package shipmentrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

type ShipmentDTO struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OwnerID          int64         `gorm:"not null;index"`
	TrackingNumber   string        `gorm:"type:varchar(32);not null;uniqueIndex"`
	EntryPoint       string        `gorm:"type:varchar(6);not null"`
	Service          string        `gorm:"type:varchar(64);not null"`
	Class            int           `gorm:"type:smallint;not null"`
	Terms            string        `gorm:"type:varchar(3);not null"`
	Packages         []PackageDTO  `gorm:"type:jsonb;serializer:json"`
	LineItems        []LineItemDTO `gorm:"type:jsonb;serializer:json"`
	ChargeableWeight float64       `gorm:"not null"`
	Canceled         bool          `gorm:"not null;default:false"`
	Test             bool          `gorm:"not null;default:false"`
	OverpackID       *uuid.UUID    `gorm:"type:uuid;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type PackageDTO struct {
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	Length           float64 `json:"length"`
	Width            float64 `json:"width"`
	ChargeableWeight float64 `json:"chargeable_weight"`
}

type LineItemDTO struct {
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	Value         float64 `json:"value"`
	Weight        float64 `json:"weight"`
	OriginCountry string  `json:"origin_country"`
}

// LabelDTO marks that a carrier label was bought for a shipment.
type LabelDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
}

func (LabelDTO) TableName() string {
	return "labels"
}

// FulfillmentDTO marks that a shipment entered outbound processing.
type FulfillmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProcessedAt time.Time
}

func (FulfillmentDTO) TableName() string {
	return "fulfillments"
}

// shipmentRow is a shipment with the label and fulfillment flags derived in SQL.
type shipmentRow struct {
	ShipmentDTO `gorm:"embedded"`
	HasLabel    bool
	Processed   bool
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	var overpackID *uuid.UUID
	if id := s.OverpackID(); id != nil {
		raw := id.Bytes()
		overpackID = &raw
	}

	packages := make([]PackageDTO, 0, len(s.Packages()))
	for _, p := range s.Packages() {
		d := p.Dimensions()
		packages = append(packages, PackageDTO{
			Weight:           p.Weight(),
			Height:           d.Height,
			Length:           d.Length,
			Width:            d.Width,
			ChargeableWeight: p.ChargeableWeight(),
		})
	}

	items := make([]LineItemDTO, 0, len(s.LineItems()))
	for _, li := range s.LineItems() {
		items = append(items, LineItemDTO(li))
	}

	return ShipmentDTO{
		ID:               s.ID().Bytes(),
		OwnerID:          int64(s.Owner()),
		TrackingNumber:   s.TrackingNumber(),
		EntryPoint:       s.EntryPoint().Code(),
		Service:          s.Service(),
		Class:            int(s.Class()),
		Terms:            s.Terms(),
		Packages:         packages,
		LineItems:        items,
		ChargeableWeight: s.ChargeableWeight(),
		Canceled:         s.IsCanceled(),
		Test:             s.IsTest(),
		OverpackID:       overpackID,
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func toDomain(row shipmentRow) (*shipment.Shipment, error) {
	dto := row.ShipmentDTO

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var overpackID *kernel.UUID
	if dto.OverpackID != nil {
		oID, opErr := kernel.UUIDFromBytes((*dto.OverpackID)[:])
		if opErr != nil {
			return nil, opErr
		}
		overpackID = &oID
	}

	entryPoint, err := kernel.NewEntryPoint(dto.EntryPoint)
	if err != nil {
		return nil, err
	}

	packages := make([]shipment.Package, 0, len(dto.Packages))
	for _, p := range dto.Packages {
		packages = append(packages, shipment.RestorePackage(
			p.Weight,
			shipment.Dimensions{Height: p.Height, Length: p.Length, Width: p.Width},
			p.ChargeableWeight,
		))
	}

	items := make([]shipment.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		items = append(items, shipment.LineItem(li))
	}

	return shipment.RestoreShipment(shipment.Snapshot{
		ID:             id,
		Owner:          kernel.PrincipalID(dto.OwnerID),
		TrackingNumber: dto.TrackingNumber,
		Details: shipment.Details{
			EntryPoint: entryPoint,
			Service:    dto.Service,
			Class:      shipment.Class(dto.Class),
			Terms:      dto.Terms,
			Packages:   packages,
			LineItems:  items,
			Test:       dto.Test,
		},
		ChargeableWeight: dto.ChargeableWeight,
		Canceled:         dto.Canceled,
		HasLabel:         row.HasLabel,
		Processed:        row.Processed,
		OverpackID:       overpackID,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	})
}
