package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

// APIDoc is the loaded and validated API description.
type APIDoc struct {
	doc  *openapi3.T
	json []byte
}

// LoadAPIDoc parses the embedded description and validates it.
func LoadAPIDoc(ctx context.Context) (*APIDoc, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	body, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	return &APIDoc{doc: doc, json: body}, nil
}

// Version is the info.version of the document.
func (d *APIDoc) Version() string {
	return d.doc.Info.Version
}

// HasOperation reports whether the document describes method on path, where
// path uses the document's {param} syntax.
func (d *APIDoc) HasOperation(method, path string) bool {
	item := d.doc.Paths.Find(path)
	return item != nil && item.GetOperation(method) != nil
}

// ReadDoc makes APIDoc a swag.Swagger so echo-swagger can serve it.
func (d *APIDoc) ReadDoc() string {
	return string(d.json)
}

// ServeJSON handles GET /openapi.json.
func (d *APIDoc) ServeJSON(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, d.json)
}

var registerOnce sync.Once

// register installs the document as the default swag instance. swag panics on
// a second registration under one name, so only the first document wins.
func (d *APIDoc) register() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, d)
	})
}
