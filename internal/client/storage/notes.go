package storage

import (
	"context"

	"github.com/iudanet/lightnotes/internal/models"
)

// NoteStore defines the local data source the sync core reads from and writes to.
// Implementations: filestore (directory layout, primary) and memory (tests).
type NoteStore interface {
	MetaStore

	// ListEntries returns the local note index
	// Returns an empty index if nothing was saved yet
	ListEntries(ctx context.Context) (models.Index, error)

	// SaveIndex replaces the local note index
	SaveIndex(ctx context.Context, entries models.Index) error

	// ReadBody returns the note body
	// Returns ErrNoteNotFound if the body is absent locally
	ReadBody(ctx context.Context, id string) (string, error)

	// WriteBody stores the note body
	WriteBody(ctx context.Context, id, body string) error

	// DeleteBody removes the note body and its sync metadata
	// Deleting an absent note is not an error
	DeleteBody(ctx context.Context, id string) error

	// ReadTodos returns the local todo list (empty if none)
	ReadTodos(ctx context.Context) ([]models.Todo, error)

	// SaveTodos replaces the local todo list
	SaveTodos(ctx context.Context, todos []models.Todo) error
}

// MetaStore holds per-note sync metadata used by the dirty tracker
type MetaStore interface {
	// GetMeta returns metadata for the note; zero value if none was stored
	GetMeta(ctx context.Context, id string) (models.NoteMeta, error)

	// SetMeta replaces metadata for the note
	SetMeta(ctx context.Context, id string, meta models.NoteMeta) error
}
