package overpackrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOverpackRepository implements OverpackRepository using GORM.
type GormOverpackRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOverpackRepository(db *gorm.DB, tracker aggregateTracker) *GormOverpackRepository {
	return &GormOverpackRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOverpackRepository) Add(ctx context.Context, aggregate *overpack.Overpack) error {
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

func (r *GormOverpackRepository) Update(ctx context.Context, aggregate *overpack.Overpack) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OverpackDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "owner_id", "created_at").
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

// Delete removes an unmanifested overpack. A manifested row is never deleted, even
// if a caller skipped the domain check.
func (r *GormOverpackRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OverpackDTO{}, "id = ? AND manifest_id IS NULL", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormOverpackRepository) Get(ctx context.Context, id kernel.UUID) (*overpack.Overpack, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OverpackDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("overpack", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOverpackRepository) CountShipments(ctx context.Context, id kernel.UUID) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Table("shipments").
		Where("overpack_id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
