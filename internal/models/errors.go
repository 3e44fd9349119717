package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrDuplicate indicates a row violating a uniqueness rule already exists
	ErrDuplicate = errors.New("duplicate")

	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrStatusConflict indicates a conditional status update matched no row
	// because the current status was not the expected one
	ErrStatusConflict = errors.New("status conflict")
)
