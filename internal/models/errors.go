package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique column constraint was violated
	ErrDuplicate = errors.New("duplicate entry")
)
