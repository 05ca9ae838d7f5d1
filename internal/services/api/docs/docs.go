// Package docs embeds the OpenAPI document served behind the swagger UI
package docs

import (
	_ "embed"
)

//go:embed openapi.json
var openapi []byte

// OpenAPI returns the raw document
func OpenAPI() []byte { return openapi }
