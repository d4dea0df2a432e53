package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/overpack"

	"github.com/labstack/echo/v4"
)

// GetOverpack handles GET /v2/overpacks/:id.
func (s *Server) GetOverpack(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}
	return s.respondOverpack(c, http.StatusOK, id)
}

// CreateOverpack handles POST /v2/overpacks.
func (s *Server) CreateOverpack(c echo.Context) error {
	var req OverpackRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	details, err := overpackDetails(req.Overpack)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOverpackCommand(principalFrom(c), id, details, req.Overpack.Shipments)
	if err != nil {
		return err
	}
	if err = s.h.CreateOverpack.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOverpack(c, http.StatusCreated, id)
}

// UpdateOverpack handles PUT /v2/overpacks/:id. The body is read only after the
// overpack is found editable, so a manifested overpack is refused whatever it carries.
func (s *Server) UpdateOverpack(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOverpackCommand(principalFrom(c), id, func() (overpack.Details, error) {
		var req OverpackRequest
		if err := bindBody(c, &req); err != nil {
			return overpack.Details{}, err
		}
		if err := c.Validate(&req); err != nil {
			return overpack.Details{}, err
		}
		return overpackDetails(req.Overpack)
	})
	if err != nil {
		return err
	}
	if err = s.h.UpdateOverpack.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOverpack(c, http.StatusOK, id)
}

// PatchOverpack handles PATCH /v2/overpacks/:id. Only membership can be patched.
func (s *Server) PatchOverpack(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewPatchOverpackShipmentsCommand(principalFrom(c), id, func() ([]string, []string, error) {
		var req OverpackPatchRequest
		if err := bindBody(c, &req); err != nil {
			return nil, nil, err
		}
		return req.Overpack.Shipments.Remove, req.Overpack.Shipments.Add, nil
	})
	if err != nil {
		return err
	}
	if err = s.h.PatchOverpackShipments.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOverpack(c, http.StatusOK, id)
}

// DeleteOverpack handles DELETE /v2/overpacks/:id.
func (s *Server) DeleteOverpack(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOverpackCommand(principalFrom(c), id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteOverpack.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) respondOverpack(c echo.Context, status int, id kernel.UUID) error {
	q, err := queries.NewGetOverpackQuery(principalFrom(c), id)
	if err != nil {
		return err
	}
	v, err := s.h.GetOverpack.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(status, OverpackResponse{Overpack: toOverpackDTO(v)})
}

func overpackDetails(b OverpackBody) (overpack.Details, error) {
	ep, err := kernel.NewEntryPoint(b.EntryPoint)
	if err != nil {
		return overpack.Details{}, err
	}
	return overpack.Details{
		EntryPoint: ep,
		Service:    b.Service,
		Carrier:    b.Carrier,
		Terms:      b.Terms,
		Height:     b.Height,
		Length:     b.Length,
		Width:      b.Width,
		Weight:     b.Weight,
	}, nil
}
