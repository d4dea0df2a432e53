package catalog

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

type Product struct {
	id    kernel.UUID
	owner kernel.PrincipalID
	name  string

	isConstructed bool
}

func NewProduct(id kernel.UUID, owner kernel.PrincipalID, name string) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !owner.IsAuthenticated() {
		return nil, errs.NewValueIsRequiredError("owner")
	}
	return &Product{id: id, owner: owner, name: name, isConstructed: true}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID           { return p.id }
func (p *Product) Owner() kernel.PrincipalID { return p.owner }
func (p *Product) Name() string              { return p.name }

func (p *Product) ResolveOwner() kernel.Owner {
	return kernel.OwnedBy(p.owner)
}

// ProductSku is the listing of a product in a shop. Its owner is defined only
// when the product owner and the shop owner agree.
type ProductSku struct {
	productID    kernel.UUID
	shopID       kernel.UUID
	productOwner kernel.PrincipalID
	shopOwner    kernel.PrincipalID
}

func NewProductSku(product *Product, shop *Shop) (*ProductSku, error) {
	if err := errors.Join(product.Validate(), shop.Validate()); err != nil {
		return nil, err
	}
	return &ProductSku{
		productID:    product.ID(),
		shopID:       shop.ID(),
		productOwner: product.Owner(),
		shopOwner:    shop.Owner(),
	}, nil
}

func RestoreProductSku(productID, shopID kernel.UUID, productOwner, shopOwner kernel.PrincipalID) *ProductSku {
	return &ProductSku{
		productID:    productID,
		shopID:       shopID,
		productOwner: productOwner,
		shopOwner:    shopOwner,
	}
}

func (s *ProductSku) ProductID() kernel.UUID { return s.productID }
func (s *ProductSku) ShopID() kernel.UUID    { return s.shopID }

func (s *ProductSku) ResolveOwner() kernel.Owner {
	return kernel.AgreeingOwner(kernel.OwnedBy(s.productOwner), kernel.OwnedBy(s.shopOwner))
}
