// Package overpack models the consolidation of shipments into a single handling unit.
//
// Membership is stored on the shipment (its overpack id); the overpack never keeps
// a member list. Once an overpack is linked to a manifest it is frozen: every
// mutation, including membership changes, is refused with a state conflict.
package overpack

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/pkg/errs"
)

// Verbs used in the frozen-overpack message.
const (
	ActionUpdate = "updated"
	ActionDelete = "deleted"
	ActionChange = "changed"
)

var ErrOverpackIsNotConstructed = errors.New("Overpack must be created via NewOverpack or RestoreOverpack constructor")

// Details is the caller-editable part of an overpack.
type Details struct {
	EntryPoint kernel.EntryPoint
	Service    string
	Carrier    string
	Terms      string
	Height     int
	Length     int
	Width      int
	Weight     float64
}

type Overpack struct {
	id         kernel.UUID
	owner      kernel.PrincipalID
	details    Details
	manifestID *kernel.UUID
	createdAt  time.Time

	isConstructed bool
}

func NewOverpack(id kernel.UUID, owner kernel.PrincipalID, details Details) (*Overpack, error) {
	o := &Overpack{createdAt: time.Now().UTC(), isConstructed: true}
	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}
	return o, nil
}

func RestoreOverpack(
	id kernel.UUID,
	owner kernel.PrincipalID,
	details Details,
	manifestID *kernel.UUID,
	createdAt time.Time,
) (*Overpack, error) {
	o := &Overpack{
		details:       details,
		manifestID:    manifestID,
		createdAt:     createdAt,
		isConstructed: true,
	}
	if err := errors.Join(o.setID(id), o.setOwner(owner)); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Overpack) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOverpackIsNotConstructed
	}
	return nil
}

func (o *Overpack) ID() kernel.UUID               { return o.id }
func (o *Overpack) Owner() kernel.PrincipalID     { return o.owner }
func (o *Overpack) Details() Details              { return o.details }
func (o *Overpack) EntryPoint() kernel.EntryPoint { return o.details.EntryPoint }
func (o *Overpack) CreatedAt() time.Time          { return o.createdAt }

func (o *Overpack) ManifestID() *kernel.UUID {
	if o.manifestID == nil {
		return nil
	}
	id := *o.manifestID
	return &id
}

// IsManifested reports whether the overpack is frozen.
func (o *Overpack) IsManifested() bool {
	return o.manifestID != nil
}

func (o *Overpack) ResolveOwner() kernel.Owner {
	return kernel.OwnedBy(o.owner)
}

// EnsureMutable fails with a state conflict once the overpack is manifested.
// action completes the sentence "Manifested overpacks cannot be <action>."
func (o *Overpack) EnsureMutable(action string) error {
	if o.manifestID == nil {
		return nil
	}
	return errs.NewStateConflictError("overpack", o.id.String(),
		fmt.Sprintf("Manifested overpacks cannot be %s.", action))
}

// Update replaces the editable details of a mutable overpack.
func (o *Overpack) Update(details Details) error {
	if err := o.EnsureMutable(ActionUpdate); err != nil {
		return err
	}
	return o.setDetails(details)
}

// AddShipment links s to this overpack. Adding a current member is a no-op.
func (o *Overpack) AddShipment(s *shipment.Shipment) error {
	if err := o.EnsureMutable(ActionChange); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Owner() != o.owner {
		return errs.NewObjectNotFoundError("shipment", s.ID().String())
	}
	if s.BelongsTo(o.id) {
		return nil
	}
	if s.IsOverpacked() {
		return errs.NewStateConflictError("shipment", s.ID().String(),
			"Shipments that already belong to another Overpack cannot be added.")
	}
	if s.IsCanceled() {
		return errs.NewStateConflictError("shipment", s.ID().String(),
			"Canceled shipments cannot be added to an Overpack.")
	}
	return s.AssignOverpack(o.id)
}

// RemoveShipment unlinks s. Removing a non-member is a no-op.
func (o *Overpack) RemoveShipment(s *shipment.Shipment) error {
	if err := o.EnsureMutable(ActionChange); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if s.BelongsTo(o.id) {
		s.ClearOverpack()
	}
	return nil
}

// PatchMembership applies removals before additions and stops at the first error.
// The caller owns the transaction, so a failure leaves nothing committed.
func (o *Overpack) PatchMembership(removals, additions []*shipment.Shipment) error {
	if err := o.EnsureMutable(ActionChange); err != nil {
		return err
	}
	for _, s := range removals {
		if err := o.RemoveShipment(s); err != nil {
			return err
		}
	}
	for _, s := range additions {
		if err := o.AddShipment(s); err != nil {
			return err
		}
	}
	return nil
}

// AssignManifest freezes the overpack. Only the manifest aggregate calls this.
func (o *Overpack) AssignManifest(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	if o.manifestID != nil {
		return errs.NewStateConflictError("overpack", o.id.String(),
			fmt.Sprintf("Already manifested Overpacks (overpack id: %s) cannot be added.", o.id))
	}
	id := manifestID
	o.manifestID = &id
	return nil
}

func (o *Overpack) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Overpack) setOwner(owner kernel.PrincipalID) error {
	if !owner.IsAuthenticated() {
		return errs.NewValueIsRequiredError("owner")
	}
	o.owner = owner
	return nil
}

func (o *Overpack) setDetails(d Details) error {
	if d.EntryPoint.IsEmpty() {
		return errs.NewValueIsRequiredError("entry_point")
	}
	if d.Service == "" {
		d.Service = shipment.DefaultService
	}
	d.Terms = strings.ToUpper(d.Terms)
	if d.Terms == "" {
		d.Terms = shipment.TermsDDU
	}
	if d.Terms != shipment.TermsDDU && d.Terms != shipment.TermsDDP {
		return errs.NewValueIsInvalidErrorWithCause("terms", fmt.Errorf("%q is not DDU or DDP", d.Terms))
	}
	if d.Height < 0 || d.Length < 0 || d.Width < 0 || d.Weight < 0 {
		return errs.NewValueIsInvalidError("dimensions")
	}
	o.details = d
	return nil
}
