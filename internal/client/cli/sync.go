package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/lightnotes/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	if err := c.requireSync(); err != nil {
		return err
	}

	c.io.Println("=== Synchronization ===")
	c.io.Println()

	res := c.syncer.StartupSync(ctx)
	c.printResult(res)
	c.recordSync(ctx)
	return nil
}

func (c *Cli) runFocus(ctx context.Context) error {
	if err := c.requireSync(); err != nil {
		return err
	}

	c.io.Println("=== Focus Sync ===")
	c.io.Println()

	res := c.syncer.FocusSync(ctx)
	c.printResult(res)
	c.recordSync(ctx)
	return nil
}

func (c *Cli) runPush(ctx context.Context) error {
	if err := c.requireSync(); err != nil {
		return err
	}

	if err := c.syncer.PushNow(ctx); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	c.io.Println("✓ Local changes pushed")
	return nil
}

func (c *Cli) runDrain(ctx context.Context) error {
	if err := c.requireSync(); err != nil {
		return err
	}

	res, err := c.syncer.DrainQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to drain queue: %w", err)
	}

	c.io.Printf("Replayed:  %d\n", res.Replayed)
	c.io.Printf("Dropped:   %d\n", res.Dropped)
	c.io.Printf("Remaining: %d\n", res.Remaining)
	return nil
}

func (c *Cli) runQueue(ctx context.Context) error {
	if err := c.requireSync(); err != nil {
		return err
	}

	ops, err := c.syncer.PendingOps(ctx)
	if err != nil {
		return fmt.Errorf("failed to read queue: %w", err)
	}

	if len(ops) == 0 {
		c.io.Println("Offline queue is empty.")
		return nil
	}

	c.io.Printf("%d queued operation(s):\n", len(ops))
	for i, op := range ops {
		c.io.Printf("%d. %-11s %-36s %s\n", i+1, op.Kind, op.Target(), op.EnqueuedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (c *Cli) printResult(res *sync.Result) {
	switch {
	case res == nil:
		c.io.Println("Sync skipped.")
		return
	case res.Offline:
		c.io.Println("⚠️  Remote storage is unreachable or not configured; changes stay local.")
	default:
		c.io.Println("✓ Synchronization completed successfully!")
	}
	c.io.Println()

	c.io.Printf("Pushed notes:        %d\n", res.Pushed)
	c.io.Printf("Merged index:        %d\n", res.Merged)
	c.io.Printf("Pulled notes:        %d\n", res.Pulled)
	c.io.Printf("Downloaded missing:  %d\n", res.Backfilled)
	if res.SkippedDirty > 0 {
		c.io.Printf("Kept local (dirty):  %d\n", res.SkippedDirty)
	}
	if res.TodosUpdated {
		c.io.Println("Todos updated from remote.")
	}
}

// recordSync запоминает время успешной синхронизации
func (c *Cli) recordSync(ctx context.Context) {
	if c.meta == nil || c.syncer.Status() != sync.StatusSynced {
		return
	}
	if err := c.meta.SaveLastSyncTimestamp(ctx, c.now().UnixMilli()); err != nil {
		c.io.Printf("Warning: failed to record sync time: %v\n", err)
	}
}
