package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetManifestQueryIsNotConstructed = errors.New(
	"GetManifestQuery must be created via NewGetManifestQuery constructor",
)

type GetManifestQuery struct {
	principal  kernel.PrincipalID
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetManifestQuery(principal kernel.PrincipalID, manifestID kernel.UUID) (GetManifestQuery, error) {
	if err := manifestID.Validate(); err != nil {
		return GetManifestQuery{}, err
	}
	return GetManifestQuery{
		principal:  principal,
		manifestID: manifestID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetManifestQueryIsNotConstructed)
}

func (q GetManifestQuery) Principal() kernel.PrincipalID { return q.principal }
func (q GetManifestQuery) ManifestID() kernel.UUID       { return q.manifestID }

type ManifestView struct {
	ID              kernel.UUID
	EntryPoint      string
	InboundCarrier  string
	InboundTracking string
	OverpackIDs     []kernel.UUID
	TotalOverpacks  int
	CreatedAt       time.Time
}
