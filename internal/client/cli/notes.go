package cli

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/iudanet/lightnotes/internal/models"
	"github.com/iudanet/lightnotes/internal/validation"
)

func (c *Cli) runNew(ctx context.Context, args []string) error {
	fs := newFlagSet("new")
	title := fs.String("title", "", "note title")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w. Usage: lightnotes new [-title T] [TEXT...]", err)
	}
	if *title != "" {
		if err := validation.ValidateTitle(*title); err != nil {
			return err
		}
	}

	body := models.EmptyNoteBody
	if text := strings.TrimSpace(strings.Join(fs.Args(), " ")); text != "" {
		body = "<p>" + html.EscapeString(text) + "</p>"
	}

	entry, err := c.notes.Create(ctx, body)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	if *title != "" {
		if err := c.notes.Rename(ctx, entry.ID, *title); err != nil {
			return fmt.Errorf("failed to set title: %w", err)
		}
	}

	c.io.Printf("✓ Created note %s\n", entry.ID)
	return nil
}

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note ID. Usage: lightnotes show <id>")
	}

	id, err := c.resolve(ctx, args[0])
	if err != nil {
		return err
	}
	note, err := c.notes.Read(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to read note: %w", err)
	}

	header, err := render("note", note.NoteEntry)
	if err != nil {
		return err
	}
	if _, err := c.io.Write(header); err != nil {
		return err
	}
	if _, err := c.io.Write([]byte(note.Body + "\n")); err != nil {
		return err
	}
	return nil
}

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	fs := newFlagSet("edit")
	title := fs.String("title", "", "explicit title; derived from the body when empty")
	if err := fs.Parse(args); err != nil || fs.NArg() == 0 {
		return fmt.Errorf("missing note ID. Usage: lightnotes edit [-title T] <id> [file]")
	}
	if *title != "" {
		if err := validation.ValidateTitle(*title); err != nil {
			return err
		}
	}

	id, err := c.resolve(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	body, err := c.readBody(fs.Arg(1))
	if err != nil {
		return err
	}

	entry, err := c.notes.UpdateBody(ctx, id, body, *title)
	if err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	c.io.Printf("✓ Saved %s (%s)\n", shortID(entry.ID), entry.Title)
	return nil
}

// readBody читает тело из файла, или из stdin если путь пуст или "-"
func (c *Cli) readBody(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(c.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read note body: %w", err)
	}

	body := strings.TrimRight(string(data), "\n")
	if strings.TrimSpace(body) == "" {
		body = models.EmptyNoteBody
	}
	return body, nil
}

func (c *Cli) runTitle(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: lightnotes title <id> <title>")
	}

	title := strings.Join(args[1:], " ")
	if err := validation.ValidateTitle(title); err != nil {
		return err
	}

	id, err := c.resolve(ctx, args[0])
	if err != nil {
		return err
	}
	if err := c.notes.Rename(ctx, id, title); err != nil {
		return fmt.Errorf("failed to rename note: %w", err)
	}

	c.io.Printf("✓ Renamed %s\n", shortID(id))
	return nil
}

func (c *Cli) runPin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note ID. Usage: lightnotes pin <id>")
	}

	id, err := c.resolve(ctx, args[0])
	if err != nil {
		return err
	}
	pinned, err := c.notes.TogglePin(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to toggle pin: %w", err)
	}

	if pinned {
		c.io.Printf("✓ Pinned %s\n", shortID(id))
	} else {
		c.io.Printf("✓ Unpinned %s\n", shortID(id))
	}
	return nil
}

func (c *Cli) runDuplicate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note ID. Usage: lightnotes dup <id>")
	}

	id, err := c.resolve(ctx, args[0])
	if err != nil {
		return err
	}
	entry, err := c.notes.Duplicate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to duplicate note: %w", err)
	}

	c.io.Printf("✓ Created note %s (%s)\n", entry.ID, entry.Title)
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	fs := newFlagSet("rm")
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil || fs.NArg() == 0 {
		return fmt.Errorf("missing note ID. Usage: lightnotes rm [-y] <id>")
	}

	id, err := c.resolve(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	if !*yes {
		note, err := c.notes.Read(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to read note: %w", err)
		}

		c.io.Println("About to delete:")
		c.io.Printf("  ID:    %s\n", note.ID)
		c.io.Printf("  Title: %s\n", note.Title)
		c.io.Println()

		ok, err := c.confirm("Are you sure you want to delete this note?")
		if err != nil {
			return err
		}
		if !ok {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := c.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	c.io.Printf("✓ Deleted %s\n", shortID(id))
	return nil
}
