// Package api holds the HTTP contract of the HomeBid API: the OpenAPI
// document, its wire types and the documentation routes.
package api

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document. The document is
// loaded once; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			swaggerErr = fmt.Errorf("failed to load openapi document: %w", err)
			return
		}
		if err := doc.Validate(loader.Context); err != nil {
			swaggerErr = fmt.Errorf("invalid openapi document: %w", err)
			return
		}
		swagger = doc
	})
	return swagger, swaggerErr
}

// NewSwagger parses a private copy of the OpenAPI document that the caller may
// modify, for example to clear its servers before building a router.
func NewSwagger() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	return doc, nil
}
