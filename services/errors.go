package services

import (
	"fmt"
	"strings"
)

// ValidationError reports every missing or malformed required field, not
// just the first one encountered.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// NotFoundError means an identifier did not resolve to any entity.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError means the operation would violate a uniqueness or
// referential constraint (duplicate department number, deleting a
// sub-department still referenced by a case).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// TransportError means mail delivery failed. Reason carries the
// provider-specific cause for the caller; the side effects committed before
// the delivery attempt are not undone.
type TransportError struct {
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mail transport: %s: %v", e.Reason, e.Err)
	}
	return "mail transport: " + e.Reason
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StoreError wraps an underlying persistence failure. Surfaced to callers
// as a generic internal error without leaking details outside development.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
