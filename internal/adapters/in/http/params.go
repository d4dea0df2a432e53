package http

import (
	"net/http"
	"strings"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// bindID reads a uuid path parameter. A malformed id cannot name an existing
// entity, so it reads as not found.
func bindID(c echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause(name, c.Param(name), err)
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause(name, c.Param(name), err)
	}
	return id, nil
}

// bindPage reads the optional page and limit query parameters.
func bindPage(c echo.Context) (queries.Page, error) {
	var page, limit int
	if err := runtime.BindQueryParameter("form", true, false, "page", c.QueryParams(), &page); err != nil {
		return queries.Page{}, errs.NewValueIsInvalidErrorWithCause("page", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		return queries.Page{}, errs.NewValueIsInvalidErrorWithCause("limit", err)
	}
	return queries.NewPage(page, limit)
}

func parseIDs(raw []string, param string) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.ParseID(param, s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

const mimeMergePatchJSON = "application/merge-patch+json"

// bindBody decodes the request body. Merge-patch bodies are plain JSON to us,
// but echo's default binder does not recognise the media type.
func bindBody(c echo.Context, dst any) error {
	var err error
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), mimeMergePatchJSON) {
		err = c.Echo().JSONSerializer.Deserialize(c, dst)
	} else {
		err = c.Bind(dst)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequest).SetInternal(err)
	}
	return nil
}
