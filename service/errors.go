package service

import (
	"errors"
	"fmt"
)

// Reference failure reasons.
const (
	ReasonUserNotFound         = "UserNotFound"
	ReasonProfileAlreadyExists = "ProfileAlreadyExists"
	ReasonMemberTypeNotFound   = "MemberTypeNotFound"
)

// Conflict reasons.
const (
	ReasonAlreadySubscribed = "AlreadySubscribed"
	ReasonNotSubscribed     = "NotSubscribed"
)

// NotFoundError reports that the record targeted by an operation does not
// exist.
type NotFoundError struct {
	Entity string
	Id     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Id)
}

// ReferenceError reports that a foreign-key-like reference on a create
// failed validation: a missing user or member type, or a duplicate profile.
type ReferenceError struct {
	Reason string
	Id     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("reference check failed: %s (%s)", e.Reason, e.Id)
}

// ConflictError reports an edge mutation that contradicts the current graph
// state, such as subscribing twice or removing a missing edge.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Reason)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsReference reports whether err is a ReferenceError.
func IsReference(err error) bool {
	var re *ReferenceError
	return errors.As(err, &re)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
