// Package catalog holds the merchant side of the model: shops, products and the
// SKUs that link a product to a shop.
package catalog

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop or RestoreShop constructor")

type Shop struct {
	id     kernel.UUID
	owner  kernel.PrincipalID
	name   string
	active bool

	isConstructed bool
}

// NewShop creates an active shop owned by owner.
func NewShop(id kernel.UUID, owner kernel.PrincipalID, name string) (*Shop, error) {
	return RestoreShop(id, owner, name, true)
}

func RestoreShop(id kernel.UUID, owner kernel.PrincipalID, name string, active bool) (*Shop, error) {
	s := &Shop{active: active, isConstructed: true}
	if err := errors.Join(
		s.setID(id),
		s.setOwner(owner),
		s.setName(name),
	); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

func (s *Shop) ID() kernel.UUID           { return s.id }
func (s *Shop) Owner() kernel.PrincipalID { return s.owner }
func (s *Shop) Name() string              { return s.name }
func (s *Shop) IsActive() bool            { return s.active }

func (s *Shop) Deactivate() { s.active = false }
func (s *Shop) Activate()   { s.active = true }

// ResolveOwner implements kernel.Ownable.
func (s *Shop) ResolveOwner() kernel.Owner {
	return kernel.OwnedBy(s.owner)
}

func (s *Shop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shop) setOwner(owner kernel.PrincipalID) error {
	if !owner.IsAuthenticated() {
		return errs.NewValueIsRequiredError("owner")
	}
	s.owner = owner
	return nil
}

func (s *Shop) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}
