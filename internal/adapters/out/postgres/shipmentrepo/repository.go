package shipmentrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const selectWithFlags = `shipments.*,
	EXISTS (SELECT 1 FROM labels l WHERE l.shipment_id = shipments.id) AS has_label,
	EXISTS (SELECT 1 FROM fulfillments f WHERE f.shipment_id = shipments.id) AS processed`

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so a cleared overpack link is stored as NULL.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var row shipmentRow
	if err := r.lockedRows(ctx).Where("shipments.id = ?", id.Bytes()).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(row)
}

func (r *GormShipmentRepository) ResolveOwned(
	ctx context.Context,
	owner kernel.PrincipalID,
	refs []string,
) ([]*shipment.Shipment, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	var rows []shipmentRow
	if err := r.lockedRows(ctx).
		Where("shipments.owner_id = ?", int64(owner)).
		Where("(shipments.id::text = ANY(?) OR shipments.tracking_number = ANY(?))",
			pq.StringArray(refs), pq.StringArray(refs)).
		Order("shipments.created_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return toDomainList(rows)
}

func (r *GormShipmentRepository) ListByOverpack(ctx context.Context, overpackID kernel.UUID) ([]*shipment.Shipment, error) {
	if err := overpackID.Validate(); err != nil {
		return nil, err
	}

	var rows []shipmentRow
	if err := r.lockedRows(ctx).
		Where("shipments.overpack_id = ?", overpackID.Bytes()).
		Order("shipments.created_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return toDomainList(rows)
}

func (r *GormShipmentRepository) lockedRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Select(selectWithFlags).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "shipments"}})
}

func toDomainList(rows []shipmentRow) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(rows))
	for _, row := range rows {
		s, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	return shipments, nil
}
