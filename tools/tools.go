//go:build tools

package tools

// Tool dependencies: oapi-codegen generates internal/api/api.gen.go from
// openapi.yaml (go generate ./internal/api); goose inspects the embedded
// migrations by hand, e.g. goose -dir internal/adapters/postgres/migrations
// postgres "$DATABASE_URL" status.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
