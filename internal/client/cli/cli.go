// Package cli реализует команды клиента заметок
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/lightnotes/internal/client/archive"
	"github.com/iudanet/lightnotes/internal/client/iocli"
	"github.com/iudanet/lightnotes/internal/client/notes"
	"github.com/iudanet/lightnotes/internal/client/remote"
	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/client/sync"
)

// ErrLocalOnly база состояния синхронизации занята запущенным демоном
var ErrLocalOnly = errors.New("sync state is held by a running daemon; only local edits are available")

// VersionInfo информация о сборке
type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Deps зависимости команд. Syncer, Config, Meta и Daemon равны nil в локальном режиме.
type Deps struct {
	IO       iocli.IO
	Stdin    io.Reader
	Notes    notes.Service
	Store    storage.NoteStore
	Syncer   sync.Service
	Config   storage.KV[remote.Config]
	Meta     storage.MetadataStorage
	Daemon   func(ctx context.Context) error
	Logger   *slog.Logger
	Now      func() time.Time
	Version  VersionInfo
	DataDir  string
	LockedDB bool
}

type Cli struct {
	io       iocli.IO
	stdin    io.Reader
	notes    notes.Service
	store    storage.NoteStore
	syncer   sync.Service
	config   storage.KV[remote.Config]
	meta     storage.MetadataStorage
	reminder *archive.Reminder
	daemon   func(ctx context.Context) error
	logger   *slog.Logger
	now      func() time.Time
	version  VersionInfo
	dataDir  string
	lockedDB bool
}

func New(d Deps) *Cli {
	if d.Now == nil {
		d.Now = time.Now
	}
	c := &Cli{
		io:       d.IO,
		stdin:    d.Stdin,
		notes:    d.Notes,
		store:    d.Store,
		syncer:   d.Syncer,
		config:   d.Config,
		meta:     d.Meta,
		daemon:   d.Daemon,
		logger:   d.Logger,
		now:      d.Now,
		version:  d.Version,
		dataDir:  d.DataDir,
		lockedDB: d.LockedDB,
	}
	if d.Meta != nil {
		c.reminder = archive.NewReminder(d.Meta, d.Now)
	}
	return c
}

// requireSync возвращает ErrLocalOnly, если синхронизация недоступна
func (c *Cli) requireSync() error {
	if c.syncer == nil {
		return ErrLocalOnly
	}
	return nil
}

// resolve находит заметку по префиксу идентификатора
func (c *Cli) resolve(ctx context.Context, prefix string) (string, error) {
	id, err := c.notes.Resolve(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("note %q: %w", prefix, err)
	}
	return id, nil
}

// confirm запрашивает подтверждение yes/no
func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt + " (yes/no): ")
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer = strings.ToLower(answer)
	return answer == "yes" || answer == "y", nil
}

func (c *Cli) PrintUsage() {
	c.io.Println("LightNotes Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  lightnotes [OPTIONS] COMMAND [ARGS]")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  -dir PATH          Notes directory (default: ~/.lightnotes)")
	c.io.Println("  -db PATH           Sync state database (default: <dir>/sync.db)")
	c.io.Println("  -log-level LEVEL   debug, info, warn, error (default: warn)")
	c.io.Println()
	c.io.Println("Notes:")
	c.io.Println("  new [-title T] [TEXT...]     Create a note")
	c.io.Println("  list                         List notes, pinned first")
	c.io.Println("  show ID                      Print a note")
	c.io.Println("  edit [-title T] ID [FILE]    Replace note body from FILE or stdin")
	c.io.Println("  title ID TITLE...            Rename a note")
	c.io.Println("  pin ID                       Toggle pin")
	c.io.Println("  dup ID                       Duplicate a note")
	c.io.Println("  rm [-y] ID                   Delete a note")
	c.io.Println("  todo [list|add TEXT|done ID|rm ID]")
	c.io.Println()
	c.io.Println("Sync:")
	c.io.Println("  config [-token T] [-clear] [URL]  Show or set the remote storage")
	c.io.Println("  sync                         Merge remote index and fetch missing notes")
	c.io.Println("  focus                        Push local changes, then pull remote ones")
	c.io.Println("  push                         Push dirty notes, index and todos")
	c.io.Println("  drain                        Replay the offline queue")
	c.io.Println("  queue                        Show queued operations")
	c.io.Println("  status                       Show sync status")
	c.io.Println("  daemon                       Watch the notes directory and sync in background")
	c.io.Println()
	c.io.Println("Backup:")
	c.io.Println("  export [FILE]                Write notes to a zip archive")
	c.io.Println("  import [-y] FILE             Replace notes from a zip archive and upload them")
	c.io.Println("  snooze                       Postpone the backup reminder")
	c.io.Println()
	c.io.Println("  version                      Show version information")
	c.io.Println()
	c.io.Println("Note IDs may be shortened to any unique prefix.")
}
