// Package manifest models the carrier hand-off document that freezes a set of overpacks.
package manifest

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/pkg/errs"
)

var ErrManifestIsNotConstructed = errors.New("Manifest must be created via NewManifest or RestoreManifest constructor")

// Candidate is an overpack offered for manifesting together with its live shipment count.
type Candidate struct {
	Overpack       *overpack.Overpack
	TotalShipments int
}

// Manifest groups overpacks that share one entry point. Links are stored on the
// overpack side and are never removed once committed.
type Manifest struct {
	id              kernel.UUID
	owner           kernel.PrincipalID
	entryPoint      kernel.EntryPoint
	inboundCarrier  string
	inboundTracking string
	createdAt       time.Time

	isConstructed bool
}

func NewManifest(id kernel.UUID, owner kernel.PrincipalID, inboundCarrier, inboundTracking string) (*Manifest, error) {
	m := &Manifest{
		inboundCarrier:  inboundCarrier,
		inboundTracking: inboundTracking,
		createdAt:       time.Now().UTC(),
		isConstructed:   true,
	}
	if err := errors.Join(m.setID(id), m.setOwner(owner)); err != nil {
		return nil, err
	}
	return m, nil
}

func RestoreManifest(
	id kernel.UUID,
	owner kernel.PrincipalID,
	entryPoint kernel.EntryPoint,
	inboundCarrier, inboundTracking string,
	createdAt time.Time,
) (*Manifest, error) {
	m := &Manifest{
		entryPoint:      entryPoint,
		inboundCarrier:  inboundCarrier,
		inboundTracking: inboundTracking,
		createdAt:       createdAt,
		isConstructed:   true,
	}
	if err := errors.Join(m.setID(id), m.setOwner(owner)); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrManifestIsNotConstructed
	}
	return nil
}

func (m *Manifest) ID() kernel.UUID               { return m.id }
func (m *Manifest) Owner() kernel.PrincipalID     { return m.owner }
func (m *Manifest) EntryPoint() kernel.EntryPoint { return m.entryPoint }
func (m *Manifest) InboundCarrier() string        { return m.inboundCarrier }
func (m *Manifest) InboundTracking() string       { return m.inboundTracking }
func (m *Manifest) CreatedAt() time.Time          { return m.createdAt }

func (m *Manifest) ResolveOwner() kernel.Owner {
	return kernel.OwnedBy(m.owner)
}

// CheckOverpack validates c against entryPoint without changing anything.
// An empty entryPoint accepts any overpack.
func (m *Manifest) CheckOverpack(c Candidate, entryPoint kernel.EntryPoint) error {
	o := c.Overpack
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Owner() != m.owner {
		return errs.NewObjectNotFoundError("overpack", o.ID().String())
	}
	if o.IsManifested() {
		return newAlreadyManifested(o.ID().String())
	}
	if c.TotalShipments <= 0 {
		return newNoShipments(o.ID().String())
	}
	if !entryPoint.IsEmpty() && !entryPoint.IsEqual(o.EntryPoint()) {
		return newEntryPointMismatch(o.ID().String(), entryPoint.Code(), o.EntryPoint().Code())
	}
	return nil
}

// AddOverpack links and freezes the overpack. The first overpack sets the entry point.
func (m *Manifest) AddOverpack(c Candidate) error {
	if err := m.CheckOverpack(c, m.entryPoint); err != nil {
		return err
	}
	if err := c.Overpack.AssignManifest(m.id); err != nil {
		return err
	}
	if m.entryPoint.IsEmpty() {
		m.entryPoint = c.Overpack.EntryPoint()
	}
	return nil
}

func (m *Manifest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Manifest) setOwner(owner kernel.PrincipalID) error {
	if !owner.IsAuthenticated() {
		return errs.NewValueIsRequiredError("owner")
	}
	m.owner = owner
	return nil
}
