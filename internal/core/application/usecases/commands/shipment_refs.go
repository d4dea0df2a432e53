package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/core/ports"
)

// shipmentIndex maps both ids and tracking numbers to the loaded shipment so that
// a shipment referenced twice resolves to the same pointer.
type shipmentIndex map[string]*shipment.Shipment

func resolveShipments(
	ctx context.Context,
	repo ports.ShipmentRepository,
	principal kernel.PrincipalID,
	refs []string,
) (shipmentIndex, error) {
	idx := shipmentIndex{}
	if len(refs) == 0 {
		return idx, nil
	}

	found, err := repo.ResolveOwned(ctx, principal, refs)
	if err != nil {
		return nil, err
	}
	for _, s := range found {
		idx[s.ID().String()] = s
		idx[s.TrackingNumber()] = s
	}
	return idx, nil
}

// pick returns the shipments for refs in order, once each. Refs that matched
// none of the principal's shipments are skipped.
func (idx shipmentIndex) pick(refs []string) []*shipment.Shipment {
	seen := make(map[*shipment.Shipment]struct{}, len(refs))
	out := make([]*shipment.Shipment, 0, len(refs))
	for _, ref := range refs {
		s, ok := idx[ref]
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
