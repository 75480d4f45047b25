package storage

import "errors"

// Common client storage errors
var (
	// ErrNoteNotFound indicates that note body is absent in local storage
	ErrNoteNotFound = errors.New("note not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrStorageLocked indicates that the sync state database is held by another process
	ErrStorageLocked = errors.New("storage is locked by another process")
)
