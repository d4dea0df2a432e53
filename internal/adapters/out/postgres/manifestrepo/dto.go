// Package manifestrepo persists manifests. Membership is the manifest_id column of
// the overpacks table.
package manifestrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/manifest"

	"github.com/google/uuid"
)

type ManifestDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         int64     `gorm:"not null;index"`
	EntryPoint      string    `gorm:"type:varchar(6);not null"`
	InboundCarrier  string    `gorm:"type:varchar(64)"`
	InboundTracking string    `gorm:"type:varchar(128)"`
	CreatedAt       time.Time
}

func (ManifestDTO) TableName() string {
	return "manifests"
}

func fromDomain(m *manifest.Manifest) ManifestDTO {
	return ManifestDTO{
		ID:              m.ID().Bytes(),
		OwnerID:         int64(m.Owner()),
		EntryPoint:      m.EntryPoint().Code(),
		InboundCarrier:  m.InboundCarrier(),
		InboundTracking: m.InboundTracking(),
		CreatedAt:       m.CreatedAt(),
	}
}

func toDomain(dto ManifestDTO) (*manifest.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var entryPoint kernel.EntryPoint
	if dto.EntryPoint != "" {
		if entryPoint, err = kernel.NewEntryPoint(dto.EntryPoint); err != nil {
			return nil, err
		}
	}

	return manifest.RestoreManifest(
		id,
		kernel.PrincipalID(dto.OwnerID),
		entryPoint,
		dto.InboundCarrier,
		dto.InboundTracking,
		dto.CreatedAt,
	)
}
