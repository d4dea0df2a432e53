package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery pages through the principal's shipments, newest first.
//
// Example:
//
//	page, _ := NewPage(1, 50)
//	query, err := NewListShipmentsQuery(principal, page)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
//	fmt.Printf("%d shipments on %d pages\n", result.TotalShipments, result.TotalPages)
type ListShipmentsQuery struct {
	principal kernel.PrincipalID
	page      Page

	guard guard.ConstructorGuard
}

func NewListShipmentsQuery(principal kernel.PrincipalID, page Page) (ListShipmentsQuery, error) {
	if !principal.IsAuthenticated() {
		return ListShipmentsQuery{}, errs.NewValueIsRequiredError("principal")
	}
	return ListShipmentsQuery{
		principal: principal,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Principal() kernel.PrincipalID { return q.principal }
func (q ListShipmentsQuery) Page() Page                    { return q.page }

type ListShipmentsQueryResponse struct {
	Shipments      []ShipmentView
	TotalPages     int
	TotalShipments int
}
