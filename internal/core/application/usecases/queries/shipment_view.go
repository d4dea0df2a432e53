package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentView is the read model of a shipment.
type ShipmentView struct {
	ID               kernel.UUID
	TrackingNumber   string
	EntryPoint       string
	Service          string
	Class            string
	Terms            string
	Packages         []PackageView
	ChargeableWeight float64
	Canceled         bool
	Test             bool
	HasLabel         bool
	Processed        bool
	OverpackID       *kernel.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PackageView struct {
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	Length           float64 `json:"length"`
	Width            float64 `json:"width"`
	ChargeableWeight float64 `json:"chargeable_weight"`
}

const shipmentColumns = `
	s.id,
	s.tracking_number,
	s.entry_point,
	s.service,
	s.class,
	s.terms,
	s.packages,
	s.chargeable_weight,
	s.canceled,
	s.test,
	EXISTS (SELECT 1 FROM labels l WHERE l.shipment_id = s.id) AS has_label,
	EXISTS (SELECT 1 FROM fulfillments f WHERE f.shipment_id = s.id) AS processed,
	s.overpack_id,
	s.created_at,
	s.updated_at`

func scanShipment(rows *sql.Rows) (ShipmentView, error) {
	var (
		view       ShipmentView
		id         uuid.UUID
		overpackID uuid.NullUUID
		class      int
		packages   []byte
	)

	if err := rows.Scan(
		&id,
		&view.TrackingNumber,
		&view.EntryPoint,
		&view.Service,
		&class,
		&view.Terms,
		&packages,
		&view.ChargeableWeight,
		&view.Canceled,
		&view.Test,
		&view.HasLabel,
		&view.Processed,
		&overpackID,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return ShipmentView{}, err
	}

	var err error
	if view.ID, err = toKernelUUID(id); err != nil {
		return ShipmentView{}, err
	}
	if view.OverpackID, err = toKernelUUIDPtr(overpackID); err != nil {
		return ShipmentView{}, err
	}
	view.Class = shipment.Class(class).String()

	view.Packages = make([]PackageView, 0)
	if len(packages) > 0 {
		if err = json.Unmarshal(packages, &view.Packages); err != nil {
			return ShipmentView{}, err
		}
	}
	return view, nil
}
