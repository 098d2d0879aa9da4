package store

import "errors"

var (
	// ErrNotFound is returned when no record matches the filter or id.
	ErrNotFound = errors.New("store: record not found")

	// ErrAlreadyExists is returned when creating a record whose id is taken.
	ErrAlreadyExists = errors.New("store: record already exists")
)
