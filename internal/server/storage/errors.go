package storage

import "errors"

// Common storage errors
var (
	// ErrObjectNotFound indicates that object was not found in storage
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidKey indicates that object key is malformed
	ErrInvalidKey = errors.New("invalid key")
)
