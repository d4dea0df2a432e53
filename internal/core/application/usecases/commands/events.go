package commands

import (
	"encoding/json"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
)

// Outbox event types.
const (
	EventManifestFinalized  = "ManifestFinalized"
	EventShipmentCanceled   = "ShipmentCanceled"
	EventShipmentDeleted    = "ShipmentDeleted"
	EventOrderStatusChanged = "OrderStatusChanged"
)

type manifestFinalizedPayload struct {
	ManifestID  string   `json:"manifest_id"`
	Owner       int64    `json:"owner_id"`
	EntryPoint  string   `json:"entry_point"`
	OverpackIDs []string `json:"overpack_ids"`
}

type shipmentDisposedPayload struct {
	ShipmentID     string `json:"shipment_id"`
	Owner          int64  `json:"owner_id"`
	TrackingNumber string `json:"tracking_number"`
	LabelRetained  bool   `json:"label_retained"`
}

type orderStatusChangedPayload struct {
	OrderID string `json:"order_id"`
	ShopID  string `json:"shop_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

func newOutboxMessage(eventType string, aggregateID kernel.UUID, payload any) (ports.OutboxMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     body,
		OccurredAt:  time.Now().UTC(),
	}, nil
}
