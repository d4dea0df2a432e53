package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through the orders of every shop the principal owns.
type ListOrdersQuery struct {
	principal kernel.PrincipalID
	page      Page

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(principal kernel.PrincipalID, page Page) (ListOrdersQuery, error) {
	if !principal.IsAuthenticated() {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("principal")
	}
	return ListOrdersQuery{
		principal: principal,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Principal() kernel.PrincipalID { return q.principal }
func (q ListOrdersQuery) Page() Page                    { return q.page }

type ListOrdersQueryResponse struct {
	Orders      []OrderView
	TotalPages  int
	TotalOrders int
}
