package order

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

const (
	DefaultPriority = 5
	MinPriority     = 1
	MaxPriority     = 10
)

const (
	msgFrozen       = "Orders with the status of Packing or Fulfilled may not be updated."
	MsgUserStatus   = "Order status must be Holding or Processing."
	msgInactiveShop = "No orders can be created for a shop flagged as inactive."
	msgNotDeletable = "Only orders with status of Backordered, Exception, Holding, Processing, or Ready may be deleted."
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Address is a postal address block.
type Address struct {
	Name       string
	Company    string
	Street1    string
	Street2    string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// LineItemRequest asks for a product to be put on the order. Product is the
// loaded product, nil when it does not exist.
type LineItemRequest struct {
	ProductID kernel.UUID
	Product   *catalog.Product
	SKU       string
	Quantity  int
	SoldFor   float64
}

// Changes is a user edit. A zero Status leaves the status to the transition table;
// nil pointers leave the field as is.
type Changes struct {
	Status          Status
	Priority        *int
	PartialOK       *bool
	Service         *string
	ShippingAddress *Address
	LineItems       []LineItemRequest
}

// Snapshot carries every stored field of an order for RestoreOrder.
type Snapshot struct {
	ID              kernel.UUID
	ShopID          kernel.UUID
	ShopOwner       kernel.PrincipalID
	ShopOrderID     string
	Status          Status
	Priority        int
	PartialOK       bool
	Service         string
	ShippingAddress Address
	LineItems       []LineItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Order is owned through its shop: the shop's owner is the order's owner.
type Order struct {
	id              kernel.UUID
	shopID          kernel.UUID
	shopOwner       kernel.PrincipalID
	shopOrderID     string
	status          Status
	priority        int
	partialOK       bool
	service         string
	shippingAddress Address
	lineItems       []LineItem
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewOrder creates an order for shop on behalf of principal. The initial edit runs
// through the same validation pass as Update; without a requested status the
// order starts in Processing.
func NewOrder(
	id kernel.UUID,
	shop *catalog.Shop,
	principal kernel.PrincipalID,
	shopOrderID string,
	changes Changes,
) (*Order, error) {
	if err := errors.Join(id.Validate(), shop.Validate()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &Order{
		id:            id,
		shopID:        shop.ID(),
		shopOwner:     shop.Owner(),
		shopOrderID:   shopOrderID,
		status:        Unknown,
		priority:      DefaultPriority,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := o.Update(principal, shop, changes); err != nil {
		return nil, err
	}
	return o, nil
}

func RestoreOrder(snap Snapshot) (*Order, error) {
	if err := errors.Join(snap.ID.Validate(), snap.ShopID.Validate(), snap.Status.Validate()); err != nil {
		return nil, err
	}
	priority := snap.Priority
	if priority == 0 {
		priority = DefaultPriority
	}
	return &Order{
		id:              snap.ID,
		shopID:          snap.ShopID,
		shopOwner:       snap.ShopOwner,
		shopOrderID:     snap.ShopOrderID,
		status:          snap.Status,
		priority:        priority,
		partialOK:       snap.PartialOK,
		service:         snap.Service,
		shippingAddress: snap.ShippingAddress,
		lineItems:       append([]LineItem(nil), snap.LineItems...),
		createdAt:       snap.CreatedAt,
		updatedAt:       snap.UpdatedAt,
		isConstructed:   true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID           { return o.id }
func (o *Order) ShopID() kernel.UUID       { return o.shopID }
func (o *Order) ShopOrderID() string       { return o.shopOrderID }
func (o *Order) Status() Status            { return o.status }
func (o *Order) Priority() int             { return o.priority }
func (o *Order) PartialOK() bool           { return o.partialOK }
func (o *Order) Service() string           { return o.service }
func (o *Order) ShippingAddress() Address  { return o.shippingAddress }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }
func (o *Order) Owner() kernel.PrincipalID { return o.shopOwner }

func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// ResolveOwner delegates to the shop's owner.
func (o *Order) ResolveOwner() kernel.Owner {
	return kernel.OwnedBy(o.shopOwner)
}

// Update applies a user edit. Every rule is checked before anything changes and
// all violations are returned together in an errs.ValidationError.
func (o *Order) Update(principal kernel.PrincipalID, shop *catalog.Shop, c Changes) error {
	if err := o.check(principal, shop, c); err != nil {
		return err
	}

	if o.status.transitionFrom().resetQuantities {
		for i := range o.lineItems {
			o.lineItems[i].quantity = 0
		}
	}
	o.status = o.status.Next(c.Status)

	if c.Priority != nil {
		o.priority = *c.Priority
	}
	if c.PartialOK != nil {
		o.partialOK = *c.PartialOK
	}
	if c.Service != nil {
		o.service = *c.Service
	}
	if c.ShippingAddress != nil {
		o.shippingAddress = *c.ShippingAddress
	}
	for _, req := range c.LineItems {
		o.putLineItem(LineItem{
			productID: req.ProductID,
			sku:       req.SKU,
			quantity:  req.Quantity,
			soldFor:   req.SoldFor,
		})
	}

	o.updatedAt = time.Now().UTC()
	return nil
}

// EnsureEditable reports the status violation for an order that no longer takes
// edits. Update repeats the check alongside the other rules.
func (o *Order) EnsureEditable() error {
	if !o.status.IsFrozen() {
		return nil
	}
	v := errs.NewValidationError("order", o.id.String())
	v.Add("status", msgFrozen)
	return v
}

// CanDelete fails with a state conflict for statuses that may not be deleted.
func (o *Order) CanDelete() error {
	if o.status.IsDeletable() {
		return nil
	}
	return errs.NewStateConflictError("order", o.id.String(), msgNotDeletable)
}

func (o *Order) check(principal kernel.PrincipalID, shop *catalog.Shop, c Changes) error {
	v := errs.NewValidationError("order", o.id.String())

	switch {
	case o.status.IsFrozen():
		v.Add("status", msgFrozen)
	case o.status.transitionFrom().forced != Unknown:
		// the stored status decides; whatever was requested is dropped
	case c.Status != Unknown && !c.Status.IsUserSettable():
		v.Add("status", MsgUserStatus)
	case !o.status.Next(c.Status).IsUserSettable():
		v.Add("status", MsgUserStatus)
	}

	if shop == nil || !shop.IsActive() {
		v.Add("active", msgInactiveShop)
	}

	if c.Priority != nil && (*c.Priority < MinPriority || *c.Priority > MaxPriority) {
		v.Add("priority", fmt.Sprintf("Priority must be between %d and %d.", MinPriority, MaxPriority))
	}

	for _, req := range c.LineItems {
		path := fmt.Sprintf("line_items[%s]", req.ProductID)
		if req.Product == nil || req.Product.Owner() != principal {
			v.Add(path, fmt.Sprintf("Product (product id: %s) cannot be added to this Order.", req.ProductID))
			continue
		}
		if req.Quantity < 0 {
			v.Add(path, "Quantity must be 0 or greater.")
		}
	}

	return v.ErrorOrNil()
}

// putLineItem replaces the line item of the same product or appends a new one.
func (o *Order) putLineItem(li LineItem) {
	for i := range o.lineItems {
		if o.lineItems[i].productID.IsEqual(li.productID) {
			o.lineItems[i] = li
			return
		}
	}
	o.lineItems = append(o.lineItems, li)
}
