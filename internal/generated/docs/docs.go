// Package docs registers the API document with swag so echo-swagger can serve it.
package docs

import (
	"tracking/internal/generated/servers"

	"github.com/swaggo/swag"
)

// openapiDoc serves the embedded OpenAPI document as JSON.
type openapiDoc struct{}

func (openapiDoc) ReadDoc() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}

	raw, err := swagger.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, openapiDoc{})
}
