package utils

import (
	"github.com/graph-gophers/graphql-go"
)

// ParseGraphQLSchema parses the SDL schema string against the root resolver,
// panicking on any mismatch between the two. Call during server startup so a
// schema drift fails fast instead of at query time.
func ParseGraphQLSchema(schema string, rootResolver interface{}) *graphql.Schema {
	return graphql.MustParseSchema(schema, rootResolver)
}
