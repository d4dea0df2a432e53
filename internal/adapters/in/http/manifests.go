package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetManifest handles GET /v2/manifests/:id.
func (s *Server) GetManifest(c echo.Context) error {
	id, err := bindID(c, "id")
	if err != nil {
		return err
	}
	return s.respondManifest(c, http.StatusOK, id)
}

// CreateManifest handles POST /v2/manifests. All overpacks are checked before
// any is linked; a rejection names the first offending overpack.
func (s *Server) CreateManifest(c echo.Context) error {
	var req ManifestRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	overpackIDs, err := parseIDs(req.Manifest.Overpacks, "overpacks")
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateManifestCommand(
		principalFrom(c), id, req.Manifest.Carrier, req.Manifest.TrackingNumber, overpackIDs)
	if err != nil {
		return err
	}
	if err = s.h.CreateManifest.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondManifest(c, http.StatusCreated, id)
}

func (s *Server) respondManifest(c echo.Context, status int, id kernel.UUID) error {
	q, err := queries.NewGetManifestQuery(principalFrom(c), id)
	if err != nil {
		return err
	}
	v, err := s.h.GetManifest.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(status, ManifestResponse{Manifest: toManifestDTO(v)})
}
