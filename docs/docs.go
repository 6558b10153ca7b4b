// Package docs embeds the HTTP API description.
package docs

import _ "embed"

// OpenAPI is the OpenAPI 3 document served at /swagger/spec.
//
//go:embed api/openapi.yaml
var OpenAPI []byte
