package http

import (
	"errors"
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/shipment"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListShipments handles GET /v2/shipments.
func (s *Server) ListShipments(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	q, err := queries.NewListShipmentsQuery(principalFrom(c), page)
	if err != nil {
		return err
	}

	res, err := s.h.ListShipments.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}

	out := make([]ShipmentDTO, 0, len(res.Shipments))
	for _, v := range res.Shipments {
		out = append(out, toShipmentDTO(v))
	}
	return c.JSON(http.StatusOK, ShipmentsResponse{
		Shipments:      out,
		TotalPages:     res.TotalPages,
		TotalShipments: res.TotalShipments,
	})
}

// GetShipment handles GET /v2/shipments/:id.
func (s *Server) GetShipment(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}
	return s.respondShipment(c, http.StatusOK, id)
}

// CreateShipment handles POST /v2/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var req ShipmentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	details, err := shipmentDetails(req.Shipment)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(principalFrom(c), id, details)
	if err != nil {
		return err
	}
	if _, err = s.h.CreateShipment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondShipment(c, http.StatusCreated, id)
}

// UpdateShipment handles PUT /v2/shipments/:id.
func (s *Server) UpdateShipment(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}

	var req ShipmentRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	details, err := shipmentDetails(req.Shipment)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateShipmentCommand(principalFrom(c), id, details)
	if err != nil {
		return err
	}
	if err = s.h.UpdateShipment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondShipment(c, http.StatusOK, id)
}

// DeleteShipment handles DELETE /v2/shipments/:id. A refused delete is a 400
// here, unlike the 403 other state conflicts get.
func (s *Server) DeleteShipment(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteShipmentCommand(principalFrom(c), id)
	if err != nil {
		return err
	}

	disposal, err := s.h.DeleteShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		var conflict *errs.StateConflictError
		if errors.As(err, &conflict) {
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: conflict.Reason})
		}
		return err
	}

	if disposal == shipment.DisposalDelete {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: disposal.Message()})
}

func (s *Server) respondShipment(c echo.Context, status int, id kernel.UUID) error {
	q, err := queries.NewGetShipmentQuery(principalFrom(c), id)
	if err != nil {
		return err
	}
	v, err := s.h.GetShipment.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(status, ShipmentResponse{Shipment: toShipmentDTO(v)})
}

// shipmentDetails maps the request body onto domain details. The class package
// limit is checked before any per-package rule.
func shipmentDetails(b ShipmentBody) (shipment.Details, error) {
	ep, err := kernel.NewEntryPoint(b.EntryPoint)
	if err != nil {
		return shipment.Details{}, err
	}
	class, err := shipment.ParseClass(b.Class)
	if err != nil {
		return shipment.Details{}, err
	}

	raw := make([]shipment.Package, 0, len(b.Packages))
	for _, p := range b.Packages {
		raw = append(raw, shipment.RestorePackage(p.Weight, shipment.Dimensions{Height: p.Height, Length: p.Length, Width: p.Width}, 0))
	}
	if _, err = class.Apply(raw); err != nil {
		return shipment.Details{}, err
	}

	packages := make([]shipment.Package, 0, len(b.Packages))
	for _, p := range b.Packages {
		pkg, pErr := shipment.NewPackage(p.Weight, shipment.Dimensions{Height: p.Height, Length: p.Length, Width: p.Width})
		if pErr != nil {
			return shipment.Details{}, pErr
		}
		packages = append(packages, pkg)
	}

	items := make([]shipment.LineItem, 0, len(b.LineItems))
	for _, li := range b.LineItems {
		items = append(items, shipment.LineItem{
			Description:   li.Description,
			Quantity:      li.Quantity,
			Value:         li.Value,
			Weight:        li.Weight,
			OriginCountry: li.OriginCountry,
		})
	}

	return shipment.Details{
		EntryPoint: ep,
		Service:    b.Service,
		Class:      class,
		Terms:      b.Terms,
		Packages:   packages,
		LineItems:  items,
		Test:       b.Test,
	}, nil
}
