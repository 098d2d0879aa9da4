// Package service implements the social-graph operations over the entity
// store: referential integrity checks on create and update, cascade deletion
// of users, subscription edge maintenance, and the composite read views.
package service

import (
	"github.com/Luismorlan/socialgraph/store"
)

// Service is the dependency-injection point for the core operations. Add any
// collaborators the operations require here.
type Service struct {
	DB *store.Database
}

func New(db *store.Database) *Service {
	return &Service{DB: db}
}
