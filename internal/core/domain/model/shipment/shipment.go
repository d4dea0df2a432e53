package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

const (
	DefaultService = "Parcel"
	TermsDDU       = "DDU"
	TermsDDP       = "DDP"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")

// Details is the caller-editable part of a shipment.
type Details struct {
	EntryPoint kernel.EntryPoint
	Service    string
	Class      Class
	Terms      string
	Packages   []Package
	LineItems  []LineItem
	Test       bool
}

// Snapshot carries every stored field of a shipment for RestoreShipment.
type Snapshot struct {
	ID               kernel.UUID
	Owner            kernel.PrincipalID
	TrackingNumber   string
	Details          Details
	ChargeableWeight float64
	Canceled         bool
	HasLabel         bool
	Processed        bool
	OverpackID       *kernel.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Shipment is a parcel consignment owned by one principal. It may belong to at
// most one overpack, recorded only on the shipment side.
type Shipment struct {
	id               kernel.UUID
	owner            kernel.PrincipalID
	trackingNumber   string
	details          Details
	chargeableWeight float64
	canceled         bool
	hasLabel         bool
	processed        bool
	overpackID       *kernel.UUID
	createdAt        time.Time
	updatedAt        time.Time

	isConstructed bool
}

// NewShipment applies class rules and defaults, then rates the packages.
func NewShipment(
	id kernel.UUID,
	owner kernel.PrincipalID,
	trackingNumber string,
	details Details,
	rater Rater,
) (*Shipment, error) {
	now := time.Now().UTC()
	s := &Shipment{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwner(owner),
		s.setTrackingNumber(trackingNumber),
	); err != nil {
		return nil, err
	}

	if err := s.setDetails(details); err != nil {
		return nil, err
	}

	s.RecalculateChargeableWeight(rater)
	return s, nil
}

func RestoreShipment(snap Snapshot) (*Shipment, error) {
	s := &Shipment{
		details:          snap.Details,
		chargeableWeight: snap.ChargeableWeight,
		canceled:         snap.Canceled,
		hasLabel:         snap.HasLabel,
		processed:        snap.Processed,
		overpackID:       snap.OverpackID,
		createdAt:        snap.CreatedAt,
		updatedAt:        snap.UpdatedAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		s.setID(snap.ID),
		s.setOwner(snap.Owner),
		s.setTrackingNumber(snap.TrackingNumber),
		s.details.Class.Validate(),
	); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID               { return s.id }
func (s *Shipment) Owner() kernel.PrincipalID     { return s.owner }
func (s *Shipment) TrackingNumber() string        { return s.trackingNumber }
func (s *Shipment) EntryPoint() kernel.EntryPoint { return s.details.EntryPoint }
func (s *Shipment) Service() string               { return s.details.Service }
func (s *Shipment) Class() Class                  { return s.details.Class }
func (s *Shipment) Terms() string                 { return s.details.Terms }
func (s *Shipment) IsTest() bool                  { return s.details.Test }
func (s *Shipment) ChargeableWeight() float64     { return s.chargeableWeight }
func (s *Shipment) IsCanceled() bool              { return s.canceled }
func (s *Shipment) HasLabel() bool                { return s.hasLabel }
func (s *Shipment) IsProcessed() bool             { return s.processed }
func (s *Shipment) CreatedAt() time.Time          { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time          { return s.updatedAt }

func (s *Shipment) Packages() []Package {
	return append([]Package(nil), s.details.Packages...)
}

func (s *Shipment) LineItems() []LineItem {
	return append([]LineItem(nil), s.details.LineItems...)
}

// OverpackID returns the overpack the shipment belongs to, nil when loose.
func (s *Shipment) OverpackID() *kernel.UUID {
	if s.overpackID == nil {
		return nil
	}
	id := *s.overpackID
	return &id
}

func (s *Shipment) IsOverpacked() bool {
	return s.overpackID != nil
}

// BelongsTo reports whether the shipment is a member of overpackID.
func (s *Shipment) BelongsTo(overpackID kernel.UUID) bool {
	return s.overpackID != nil && s.overpackID.IsEqual(overpackID)
}

func (s *Shipment) ResolveOwner() kernel.Owner {
	return kernel.OwnedBy(s.owner)
}

// Update replaces the editable details and re-rates the shipment.
func (s *Shipment) Update(details Details, rater Rater) error {
	if err := s.setDetails(details); err != nil {
		return err
	}
	s.RecalculateChargeableWeight(rater)
	s.touch()
	return nil
}

// RecalculateChargeableWeight sums the rated weight of every package.
func (s *Shipment) RecalculateChargeableWeight(rater Rater) {
	var total float64
	for i, p := range s.details.Packages {
		w := p.Weight()
		if rater != nil {
			w = rater.ChargeableWeight(p)
		}
		s.details.Packages[i].chargeableWeight = w
		total += w
	}
	s.chargeableWeight = roundWeight(total)
}

// AssignOverpack links the shipment to an overpack. Membership rules live on the overpack.
func (s *Shipment) AssignOverpack(overpackID kernel.UUID) error {
	if err := overpackID.Validate(); err != nil {
		return err
	}
	id := overpackID
	s.overpackID = &id
	s.touch()
	return nil
}

func (s *Shipment) ClearOverpack() {
	if s.overpackID == nil {
		return
	}
	s.overpackID = nil
	s.touch()
}

// CancelOrDelete decides how a delete request is honoured:
//
//	test without label          -> delete
//	not processed, not overpacked -> cancel (label, if any, is kept)
//	anything else               -> StateConflict
func (s *Shipment) CancelOrDelete() (Disposal, error) {
	if s.details.Test && !s.hasLabel {
		return DisposalDelete, nil
	}

	if !s.processed && s.overpackID == nil {
		s.canceled = true
		s.touch()
		if s.hasLabel {
			return DisposalCancelLabelRetained, nil
		}
		return DisposalCancel, nil
	}

	return DisposalNone, errs.NewStateConflictError("shipment", s.id.String(), ErrNotDeletable.Error())
}

func (s *Shipment) touch() {
	s.updatedAt = time.Now().UTC()
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOwner(owner kernel.PrincipalID) error {
	if !owner.IsAuthenticated() {
		return errs.NewValueIsRequiredError("owner")
	}
	s.owner = owner
	return nil
}

func (s *Shipment) setTrackingNumber(tn string) error {
	if strings.TrimSpace(tn) == "" {
		return errs.NewValueIsRequiredError("tracking_number")
	}
	s.trackingNumber = tn
	return nil
}

func (s *Shipment) setDetails(d Details) error {
	if d.Class == UnknownClass {
		d.Class = ECommerce
	}
	packages, err := d.Class.Apply(d.Packages)
	if err != nil {
		return err
	}
	d.Packages = packages

	if d.Service == "" {
		d.Service = DefaultService
	}
	if d.Terms == "" {
		d.Terms = TermsDDU
	}
	if d.Terms != TermsDDU && d.Terms != TermsDDP {
		return errs.NewValueIsInvalidErrorWithCause("terms", fmt.Errorf("%q is not DDU or DDP", d.Terms))
	}
	if d.EntryPoint.IsEmpty() {
		return errs.NewValueIsRequiredError("entry_point")
	}
	if len(d.Packages) == 0 {
		return errs.NewValueIsRequiredError("packages")
	}

	var itemErr error
	for _, li := range d.LineItems {
		itemErr = errors.Join(itemErr, li.Validate())
	}
	if itemErr != nil {
		return itemErr
	}

	d.LineItems = append([]LineItem(nil), d.LineItems...)
	s.details = d
	return nil
}
