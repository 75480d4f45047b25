package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/iudanet/lightnotes/internal/client/archive"
	"github.com/iudanet/lightnotes/internal/client/remote"
)

func (c *Cli) runExport(ctx context.Context, args []string) error {
	path := archive.DefaultFileName
	if len(args) > 0 {
		path = args[0]
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	n, err := archive.Export(ctx, f, c.store)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("export failed: %w", err)
	}

	if c.reminder != nil {
		if err := c.reminder.MarkBackedUp(ctx); err != nil {
			c.io.Printf("Warning: failed to record backup time: %v\n", err)
		}
	}

	c.io.Printf("✓ Exported %d note(s) to %s\n", n, path)
	return nil
}

func (c *Cli) runImport(ctx context.Context, args []string) error {
	fs := newFlagSet("import")
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil || fs.NArg() == 0 {
		return fmt.Errorf("missing archive path. Usage: lightnotes import [-y] <file>")
	}
	path := fs.Arg(0)

	if !*yes {
		c.io.Println("Import replaces the local note index and, when connected, every remote note.")
		ok, err := c.confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			c.io.Println("Import cancelled.")
			return nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat archive: %w", err)
	}

	res, err := archive.Import(ctx, f, st.Size(), c.store, c.logger)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	c.io.Printf("✓ Imported %d note(s), %d with body\n", res.Notes, res.Bodies)
	for _, id := range res.Skipped {
		c.io.Printf("  skipped invalid entry %q\n", id)
	}
	if len(res.Removed) > 0 {
		c.io.Printf("  removed %d local note(s) not in the archive\n", len(res.Removed))
	}

	if c.syncer == nil {
		c.io.Println("The running daemon uploads imported notes as it detects them.")
		return nil
	}

	err = c.syncer.FullResetSync(ctx)
	switch {
	case remote.IsNotConfigured(err):
		c.io.Println("Remote storage is not configured; notes will be pushed once it is.")
	case err != nil:
		return fmt.Errorf("imported locally, but remote reset failed: %w", err)
	default:
		c.io.Println("✓ Remote storage replaced with imported notes")
	}
	return nil
}

func (c *Cli) runSnooze(ctx context.Context) error {
	if c.reminder == nil {
		return ErrLocalOnly
	}
	if err := c.reminder.Snooze(ctx); err != nil {
		return fmt.Errorf("failed to snooze reminder: %w", err)
	}
	c.io.Printf("✓ Backup reminder postponed for %d days\n", int(archive.SnoozeInterval.Hours()/24))
	return nil
}
