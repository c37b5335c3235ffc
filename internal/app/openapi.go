package app

import _ "embed"

// OpenAPISpec is the raw OpenAPI document served by the docs endpoints
//
//go:embed openapi.yaml
var OpenAPISpec []byte
