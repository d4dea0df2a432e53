// Package overpackrepo persists overpack aggregates. Members are not stored on the
// overpack row; they are the shipments whose overpack_id points here.
package overpackrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"

	"github.com/google/uuid"
)

type OverpackDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID    int64      `gorm:"not null;index"`
	EntryPoint string     `gorm:"type:varchar(6);not null"`
	Service    string     `gorm:"type:varchar(64);not null"`
	Carrier    string     `gorm:"type:varchar(64)"`
	Terms      string     `gorm:"type:varchar(3);not null"`
	Height     int        `gorm:"not null;default:0"`
	Length     int        `gorm:"not null;default:0"`
	Width      int        `gorm:"not null;default:0"`
	Weight     float64    `gorm:"not null;default:0"`
	ManifestID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (OverpackDTO) TableName() string {
	return "overpacks"
}

func fromDomain(o *overpack.Overpack) OverpackDTO {
	var manifestID *uuid.UUID
	if id := o.ManifestID(); id != nil {
		raw := id.Bytes()
		manifestID = &raw
	}

	d := o.Details()
	return OverpackDTO{
		ID:         o.ID().Bytes(),
		OwnerID:    int64(o.Owner()),
		EntryPoint: d.EntryPoint.Code(),
		Service:    d.Service,
		Carrier:    d.Carrier,
		Terms:      d.Terms,
		Height:     d.Height,
		Length:     d.Length,
		Width:      d.Width,
		Weight:     d.Weight,
		ManifestID: manifestID,
		CreatedAt:  o.CreatedAt(),
	}
}

func toDomain(dto OverpackDTO) (*overpack.Overpack, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var manifestID *kernel.UUID
	if dto.ManifestID != nil {
		mID, mErr := kernel.UUIDFromBytes((*dto.ManifestID)[:])
		if mErr != nil {
			return nil, mErr
		}
		manifestID = &mID
	}

	entryPoint, err := kernel.NewEntryPoint(dto.EntryPoint)
	if err != nil {
		return nil, err
	}

	return overpack.RestoreOverpack(id, kernel.PrincipalID(dto.OwnerID), overpack.Details{
		EntryPoint: entryPoint,
		Service:    dto.Service,
		Carrier:    dto.Carrier,
		Terms:      dto.Terms,
		Height:     dto.Height,
		Length:     dto.Length,
		Width:      dto.Width,
		Weight:     dto.Weight,
	}, manifestID, dto.CreatedAt)
}
