package http

import (
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
)

// Requests carry their payload under the singular entity name, e.g.
// {"overpack": {...}}; responses use the same envelope.

type PackageBody struct {
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

type ShipmentLineItemBody struct {
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	Value         float64 `json:"value"`
	Weight        float64 `json:"weight"`
	OriginCountry string  `json:"origin_country"`
}

type ShipmentBody struct {
	EntryPoint string                 `json:"entry_point" validate:"required"`
	Service    string                 `json:"service"`
	Class      string                 `json:"class"`
	Terms      string                 `json:"terms"`
	Test       bool                   `json:"test"`
	Packages   []PackageBody          `json:"packages"`
	LineItems  []ShipmentLineItemBody `json:"line_items"`
}

type ShipmentRequest struct {
	Shipment ShipmentBody `json:"shipment"`
}

type OverpackBody struct {
	EntryPoint string   `json:"entry_point" validate:"required"`
	Service    string   `json:"service"`
	Carrier    string   `json:"carrier"`
	Terms      string   `json:"terms"`
	Height     int      `json:"height" validate:"gte=0"`
	Length     int      `json:"length" validate:"gte=0"`
	Width      int      `json:"width" validate:"gte=0"`
	Weight     float64  `json:"weight" validate:"gte=0"`
	Shipments  []string `json:"shipments"`
}

type OverpackRequest struct {
	Overpack OverpackBody `json:"overpack"`
}

type ShipmentRefsPatch struct {
	Add    []string `json:"add"`
	Remove []string `json:"remove"`
}

type OverpackPatchBody struct {
	Shipments ShipmentRefsPatch `json:"shipments"`
}

type OverpackPatchRequest struct {
	Overpack OverpackPatchBody `json:"overpack"`
}

type ManifestBody struct {
	Carrier        string   `json:"carrier"`
	TrackingNumber string   `json:"tracking_number"`
	Overpacks      []string `json:"overpacks" validate:"dive,uuid"`
}

type ManifestRequest struct {
	Manifest ManifestBody `json:"manifest"`
}

type AddressBody struct {
	Name       string `json:"name"`
	Company    string `json:"company"`
	Street1    string `json:"street1"`
	Street2    string `json:"street2"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type OrderLineItemBody struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity" validate:"gte=0"`
	SoldFor   float64 `json:"sold_for"`
}

type OrderBody struct {
	ShopID          string              `json:"shop_id" validate:"omitempty,uuid"`
	ShopOrderID     string              `json:"shop_order_id"`
	Status          *string             `json:"status"`
	Priority        *int                `json:"priority"`
	PartialOK       *bool               `json:"partial_ok"`
	Service         *string             `json:"service"`
	ShippingAddress *AddressBody        `json:"shipping_address"`
	LineItems       []OrderLineItemBody `json:"line_items" validate:"dive"`
}

type OrderRequest struct {
	Order OrderBody `json:"order"`
}

type OrderStatusBody struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required"`
}

type OrderStatusesRequest struct {
	Orders []OrderStatusBody `json:"orders" validate:"required,min=1,dive"`
}

// Responses.

type MessageResponse struct {
	Message string `json:"message"`
}

type ShipmentDTO struct {
	ID               string        `json:"id"`
	TrackingNumber   string        `json:"tracking_number"`
	EntryPoint       string        `json:"entry_point"`
	Service          string        `json:"service"`
	Class            string        `json:"class"`
	Terms            string        `json:"terms"`
	Packages         []PackageBody `json:"packages"`
	ChargeableWeight float64       `json:"chargeable_weight"`
	Canceled         bool          `json:"canceled"`
	Test             bool          `json:"test"`
	HasLabel         bool          `json:"has_label"`
	Processed        bool          `json:"processed"`
	OverpackID       *string       `json:"overpack_id"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type ShipmentResponse struct {
	Shipment ShipmentDTO `json:"shipment"`
}

type ShipmentsResponse struct {
	Shipments      []ShipmentDTO `json:"shipments"`
	TotalPages     int           `json:"total_pages"`
	TotalShipments int           `json:"total_shipments"`
}

type OverpackDTO struct {
	ID             string    `json:"id"`
	EntryPoint     string    `json:"entry_point"`
	Service        string    `json:"service"`
	Carrier        string    `json:"carrier"`
	Terms          string    `json:"terms"`
	Height         int       `json:"height"`
	Length         int       `json:"length"`
	Width          int       `json:"width"`
	Weight         float64   `json:"weight"`
	ManifestID     *string   `json:"manifest_id"`
	TotalShipments int       `json:"total_shipments"`
	ShipmentIDs    []string  `json:"shipment_ids"`
	CreatedAt      time.Time `json:"created_at"`
}

type OverpackResponse struct {
	Overpack OverpackDTO `json:"overpack"`
}

type ManifestDTO struct {
	ID             string    `json:"id"`
	EntryPoint     string    `json:"entry_point"`
	Carrier        string    `json:"carrier"`
	TrackingNumber string    `json:"tracking_number"`
	OverpackIDs    []string  `json:"overpacks_ids"`
	TotalOverpacks int       `json:"total_overpacks"`
	CreatedAt      time.Time `json:"created_at"`
}

type ManifestResponse struct {
	Manifest ManifestDTO `json:"manifest"`
}

type OrderLineItemDTO struct {
	ProductID string  `json:"product_id"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SoldFor   float64 `json:"sold_for"`
}

type OrderDTO struct {
	ID              string             `json:"id"`
	ShopID          string             `json:"shop_id"`
	ShopOrderID     string             `json:"shop_order_id"`
	Status          string             `json:"status"`
	Priority        int                `json:"priority"`
	PartialOK       bool               `json:"partial_ok"`
	Service         string             `json:"service"`
	ShippingAddress AddressBody        `json:"shipping_address"`
	LineItems       []OrderLineItemDTO `json:"line_items"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type OrderResponse struct {
	Order OrderDTO `json:"order"`
}

type OrdersResponse struct {
	Orders      []OrderDTO `json:"orders"`
	TotalPages  int        `json:"total_pages"`
	TotalOrders int        `json:"total_orders"`
}

type OrderStatusDTO struct {
	ID     string  `json:"id"`
	Status *string `json:"status"`
}

type OrderStatusesResponse struct {
	Orders []OrderStatusDTO `json:"orders"`
}

func idPtr(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func idStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func toShipmentDTO(v queries.ShipmentView) ShipmentDTO {
	packages := make([]PackageBody, 0, len(v.Packages))
	for _, p := range v.Packages {
		packages = append(packages, PackageBody{Weight: p.Weight, Height: p.Height, Length: p.Length, Width: p.Width})
	}
	return ShipmentDTO{
		ID:               v.ID.String(),
		TrackingNumber:   v.TrackingNumber,
		EntryPoint:       v.EntryPoint,
		Service:          v.Service,
		Class:            v.Class,
		Terms:            v.Terms,
		Packages:         packages,
		ChargeableWeight: v.ChargeableWeight,
		Canceled:         v.Canceled,
		Test:             v.Test,
		HasLabel:         v.HasLabel,
		Processed:        v.Processed,
		OverpackID:       idPtr(v.OverpackID),
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func toOverpackDTO(v queries.OverpackView) OverpackDTO {
	return OverpackDTO{
		ID:             v.ID.String(),
		EntryPoint:     v.EntryPoint,
		Service:        v.Service,
		Carrier:        v.Carrier,
		Terms:          v.Terms,
		Height:         v.Height,
		Length:         v.Length,
		Width:          v.Width,
		Weight:         v.Weight,
		ManifestID:     idPtr(v.ManifestID),
		TotalShipments: v.TotalShipments,
		ShipmentIDs:    idStrings(v.ShipmentIDs),
		CreatedAt:      v.CreatedAt,
	}
}

func toManifestDTO(v queries.ManifestView) ManifestDTO {
	return ManifestDTO{
		ID:             v.ID.String(),
		EntryPoint:     v.EntryPoint,
		Carrier:        v.InboundCarrier,
		TrackingNumber: v.InboundTracking,
		OverpackIDs:    idStrings(v.OverpackIDs),
		TotalOverpacks: v.TotalOverpacks,
		CreatedAt:      v.CreatedAt,
	}
}

func toOrderDTO(v queries.OrderView) OrderDTO {
	items := make([]OrderLineItemDTO, 0, len(v.LineItems))
	for _, li := range v.LineItems {
		items = append(items, OrderLineItemDTO{
			ProductID: li.ProductID.String(),
			SKU:       li.SKU,
			Quantity:  li.Quantity,
			SoldFor:   li.SoldFor,
		})
	}
	a := v.ShippingAddress
	return OrderDTO{
		ID:          v.ID.String(),
		ShopID:      v.ShopID.String(),
		ShopOrderID: v.ShopOrderID,
		Status:      v.Status,
		Priority:    v.Priority,
		PartialOK:   v.PartialOK,
		Service:     v.Service,
		ShippingAddress: AddressBody{
			Name:       a.Name,
			Company:    a.Company,
			Street1:    a.Street1,
			Street2:    a.Street2,
			City:       a.City,
			Province:   a.Province,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		},
		LineItems: items,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
