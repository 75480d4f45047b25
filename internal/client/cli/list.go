package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	idx, err := c.notes.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if len(idx) == 0 {
		c.io.Println("No notes found.")
		c.io.Println()
		c.io.Println("Use 'lightnotes new' to create your first note.")
		return nil
	}

	c.io.Printf("Found %d note(s):\n", len(idx))
	c.io.Println()

	for _, e := range idx {
		mark := " "
		if e.Pinned {
			mark = "*"
		}
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		c.io.Printf("%s %-8s  %-16s  %s\n", mark, shortID(e.ID), formatMillis(e.Modified), title)
	}

	return nil
}
