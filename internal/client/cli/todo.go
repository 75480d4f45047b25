package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/lightnotes/internal/validation"
)

func (c *Cli) runTodo(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.runTodoList(ctx)
	}

	switch args[0] {
	case "list", "ls":
		return c.runTodoList(ctx)
	case "add":
		text := strings.TrimSpace(strings.Join(args[1:], " "))
		if err := validation.ValidateTodoText(text); err != nil {
			return err
		}
		todo, err := c.notes.AddTodo(ctx, text)
		if err != nil {
			return fmt.Errorf("failed to add todo: %w", err)
		}
		c.io.Printf("✓ Added %s\n", shortID(todo.ID))
		return nil
	case "done":
		if len(args) < 2 {
			return fmt.Errorf("missing todo ID. Usage: lightnotes todo done <id>")
		}
		todo, err := c.notes.ToggleTodo(ctx, args[1])
		if err != nil {
			return fmt.Errorf("failed to toggle todo: %w", err)
		}
		state := "open"
		if todo.Done {
			state = "done"
		}
		c.io.Printf("✓ %s is %s\n", shortID(todo.ID), state)
		return nil
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("missing todo ID. Usage: lightnotes todo rm <id>")
		}
		if err := c.notes.RemoveTodo(ctx, args[1]); err != nil {
			return fmt.Errorf("failed to remove todo: %w", err)
		}
		c.io.Printf("✓ Removed %s\n", args[1])
		return nil
	default:
		return fmt.Errorf("unknown todo command: %s. Use: list, add, done, rm", args[0])
	}
}

func (c *Cli) runTodoList(ctx context.Context) error {
	todos, err := c.notes.Todos(ctx)
	if err != nil {
		return fmt.Errorf("failed to list todos: %w", err)
	}

	if len(todos) == 0 {
		c.io.Println("No todos.")
		return nil
	}

	for _, t := range todos {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		c.io.Printf("%s %-8s  %s\n", box, shortID(t.ID), t.Text)
	}
	return nil
}
