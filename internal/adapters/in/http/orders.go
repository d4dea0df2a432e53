package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /v2/orders.
func (s *Server) ListOrders(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	q, err := queries.NewListOrdersQuery(principalFrom(c), page)
	if err != nil {
		return err
	}

	res, err := s.h.ListOrders.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}

	out := make([]OrderDTO, 0, len(res.Orders))
	for _, v := range res.Orders {
		out = append(out, toOrderDTO(v))
	}
	return c.JSON(http.StatusOK, OrdersResponse{
		Orders:      out,
		TotalPages:  res.TotalPages,
		TotalOrders: res.TotalOrders,
	})
}

// GetOrder handles GET /v2/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}
	return s.respondOrder(c, http.StatusOK, id)
}

// CreateOrder handles POST /v2/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	changes, err := orderChanges(id, req.Order)
	if err != nil {
		return err
	}
	shopID, err := kernel.UUIDFromString(req.Order.ShopID)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shop_id", err)
	}

	cmd, err := commands.NewCreateOrderCommand(principalFrom(c), id, shopID, req.Order.ShopOrderID, changes)
	if err != nil {
		return err
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, http.StatusCreated, id)
}

// UpdateOrder handles PUT /v2/orders/:id. Ready orders fall back to Processing
// with zeroed quantities whatever the payload. Packing and Fulfilled orders are
// refused before the body is read.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(principalFrom(c), id, func() (order.Changes, error) {
		var req OrderRequest
		if err := bindBody(c, &req); err != nil {
			return order.Changes{}, err
		}
		if err := c.Validate(&req); err != nil {
			return order.Changes{}, err
		}
		return orderChanges(id, req.Order)
	})
	if err != nil {
		return err
	}
	if err = s.h.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, http.StatusOK, id)
}

// DeleteOrder handles DELETE /v2/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(principalFrom(c), id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// PatchOrderStatuses handles PATCH /v2/orders/status. Orders the caller cannot
// see come back with a null status.
func (s *Server) PatchOrderStatuses(c echo.Context) error {
	var req OrderStatusesRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entries := make([]commands.OrderStatusEntry, 0, len(req.Orders))
	for _, o := range req.Orders {
		id, err := kernel.ParseID("orders.id", o.ID)
		if err != nil {
			return err
		}
		status, err := requestedStatus(id, o.Status)
		if err != nil {
			return err
		}
		entries = append(entries, commands.OrderStatusEntry{OrderID: id, Status: status})
	}

	cmd, err := commands.NewPatchOrderStatusesCommand(principalFrom(c), entries)
	if err != nil {
		return err
	}
	results, err := s.h.PatchOrderStatuses.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	out := make([]OrderStatusDTO, 0, len(results))
	for _, r := range results {
		dto := OrderStatusDTO{ID: r.OrderID.String()}
		if r.Status != nil {
			name := r.Status.String()
			dto.Status = &name
		}
		out = append(out, dto)
	}
	return c.JSON(http.StatusOK, OrderStatusesResponse{Orders: out})
}

func (s *Server) respondOrder(c echo.Context, status int, id kernel.UUID) error {
	q, err := queries.NewGetOrderQuery(principalFrom(c), id)
	if err != nil {
		return err
	}
	v, err := s.h.GetOrder.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(status, OrderResponse{Order: toOrderDTO(v)})
}

func orderChanges(id kernel.UUID, b OrderBody) (order.Changes, error) {
	changes := order.Changes{
		Priority:  b.Priority,
		PartialOK: b.PartialOK,
		Service:   b.Service,
	}

	if b.Status != nil {
		status, err := requestedStatus(id, *b.Status)
		if err != nil {
			return order.Changes{}, err
		}
		changes.Status = status
	}

	if a := b.ShippingAddress; a != nil {
		changes.ShippingAddress = &order.Address{
			Name:       a.Name,
			Company:    a.Company,
			Street1:    a.Street1,
			Street2:    a.Street2,
			City:       a.City,
			Province:   a.Province,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		}
	}

	for _, li := range b.LineItems {
		productID, err := kernel.ParseID("line_items.product_id", li.ProductID)
		if err != nil {
			return order.Changes{}, err
		}
		changes.LineItems = append(changes.LineItems, order.LineItemRequest{
			ProductID: productID,
			SKU:       li.SKU,
			Quantity:  li.Quantity,
			SoldFor:   li.SoldFor,
		})
	}

	return changes, nil
}

// requestedStatus reports an unknown status name the same way as a status
// the caller may not set.
func requestedStatus(id kernel.UUID, name string) (order.Status, error) {
	status, err := order.ParseStatus(name)
	if err != nil {
		v := errs.NewValidationError("order", id.String())
		v.Add("status", order.MsgUserStatus)
		return order.Unknown, v
	}
	return status, nil
}
