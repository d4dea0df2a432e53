package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetOverpackQueryIsNotConstructed = errors.New(
	"GetOverpackQuery must be created via NewGetOverpackQuery constructor",
)

type GetOverpackQuery struct {
	principal  kernel.PrincipalID
	overpackID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOverpackQuery(principal kernel.PrincipalID, overpackID kernel.UUID) (GetOverpackQuery, error) {
	if err := overpackID.Validate(); err != nil {
		return GetOverpackQuery{}, err
	}
	return GetOverpackQuery{
		principal:  principal,
		overpackID: overpackID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOverpackQuery) Validate() error {
	return q.guard.Validate(ErrGetOverpackQueryIsNotConstructed)
}

func (q GetOverpackQuery) Principal() kernel.PrincipalID { return q.principal }
func (q GetOverpackQuery) OverpackID() kernel.UUID       { return q.overpackID }

// OverpackView is an overpack with its derived membership.
type OverpackView struct {
	ID             kernel.UUID
	EntryPoint     string
	Service        string
	Carrier        string
	Terms          string
	Height         int
	Length         int
	Width          int
	Weight         float64
	ManifestID     *kernel.UUID
	TotalShipments int
	ShipmentIDs    []kernel.UUID
	CreatedAt      time.Time
}
