// Package repository defines the sentinel errors shared by every store
// implementation. The store contracts themselves live with their consumers
// in the domain packages.
package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an optimistic concurrency check fails.
	ErrConflict = errors.New("conflict: entity was modified concurrently")

	// ErrForeignKeyViolation is returned when a foreign key constraint fails.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
