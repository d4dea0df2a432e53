package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/manifest"
)

// ManifestRepository persists manifests. There is no Update or Delete: a manifest is
// frozen at creation.
type ManifestRepository interface {
	Add(ctx context.Context, aggregate *manifest.Manifest) error
	Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error)
}
