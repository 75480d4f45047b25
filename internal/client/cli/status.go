package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/lightnotes/internal/client/archive"
)

type statusView struct {
	Remote     string
	Status     string
	LastSync   string
	LastBackup string
	Notes      int
	Dirty      int
	Pending    int
}

func (c *Cli) runStatus(ctx context.Context) error {
	idx, err := c.store.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	v := statusView{
		Notes:      len(idx),
		Remote:     "not configured",
		Status:     "local only",
		LastSync:   "unknown",
		LastBackup: "unknown",
	}

	for _, e := range idx {
		meta, err := c.store.GetMeta(ctx, e.ID)
		if err != nil {
			return fmt.Errorf("failed to read note state: %w", err)
		}
		if meta.Dirty {
			v.Dirty++
		}
	}

	if c.lockedDB {
		v.Remote = "managed by running daemon"
	}

	if c.config != nil {
		cfg, err := c.config.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load remote config: %w", err)
		}
		if cfg.Configured() {
			v.Remote = cfg.BaseURL
		}
	}

	if c.syncer != nil {
		v.Status = string(c.syncer.Status())
		ops, err := c.syncer.PendingOps(ctx)
		if err != nil {
			return fmt.Errorf("failed to read queue: %w", err)
		}
		v.Pending = len(ops)
	}

	if c.meta != nil {
		lastSync, err := c.meta.GetLastSyncTimestamp(ctx)
		if err != nil {
			return fmt.Errorf("failed to read last sync time: %w", err)
		}
		lastBackup, err := c.meta.GetLastBackupTimestamp(ctx)
		if err != nil {
			return fmt.Errorf("failed to read last backup time: %w", err)
		}
		v.LastSync = formatMillis(lastSync)
		v.LastBackup = formatMillis(lastBackup)
	}

	out, err := render("status", v)
	if err != nil {
		return err
	}
	if _, err := c.io.Write(out); err != nil {
		return err
	}

	if v.Pending > 0 {
		c.io.Println()
		c.io.Printf("⚠️  %d operation(s) wait for the remote storage. Run 'lightnotes drain' to retry.\n", v.Pending)
	}

	if c.reminder != nil {
		due, err := c.reminder.Due(ctx)
		if err != nil {
			// Не прерываем выполнение
			c.io.Printf("\nWarning: failed to check backup reminder: %v\n", err)
		} else if due {
			c.io.Println()
			c.io.Printf("⚠️  No backup in the last %d days. Run 'lightnotes export' or 'lightnotes snooze'.\n",
				int(archive.ReminderInterval/(24*time.Hour)))
		}
	}

	return nil
}
