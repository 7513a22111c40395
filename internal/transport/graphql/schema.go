// Package graphql provides the GraphQL transport for the Fairway backend.
// The schema lives in schema.graphqls; requests are parsed, validated and
// dispatched by the gqlgen handler, and root fields are bound to resolver
// functions through Root rather than generated code.
package graphql

import (
	_ "embed"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphqls
var schemaSDL string

var schema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSDL})

// Schema returns the parsed schema served by the handler.
func Schema() *ast.Schema { return schema }
