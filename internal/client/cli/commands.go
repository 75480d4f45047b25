package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. args[0] имя команды.
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("missing command")
	}

	command, rest := args[0], args[1:]
	switch command {
	case "new":
		return c.runNew(ctx, rest)
	case "list", "ls":
		return c.runList(ctx)
	case "show":
		return c.runShow(ctx, rest)
	case "edit":
		return c.runEdit(ctx, rest)
	case "title":
		return c.runTitle(ctx, rest)
	case "pin":
		return c.runPin(ctx, rest)
	case "dup":
		return c.runDuplicate(ctx, rest)
	case "rm":
		return c.runDelete(ctx, rest)
	case "todo":
		return c.runTodo(ctx, rest)
	case "config":
		return c.runConfig(ctx, rest)
	case "sync":
		return c.runSync(ctx)
	case "focus":
		return c.runFocus(ctx)
	case "push":
		return c.runPush(ctx)
	case "drain":
		return c.runDrain(ctx)
	case "queue":
		return c.runQueue(ctx)
	case "status":
		return c.runStatus(ctx)
	case "export":
		return c.runExport(ctx, rest)
	case "import":
		return c.runImport(ctx, rest)
	case "snooze":
		return c.runSnooze(ctx)
	case "daemon":
		return c.runDaemon(ctx)
	case "version":
		c.printVersion()
		return nil
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (c *Cli) runDaemon(ctx context.Context) error {
	if c.daemon == nil {
		return ErrLocalOnly
	}
	c.io.Printf("Watching %s. Press Ctrl+C to stop.\n", c.dataDir)
	return c.daemon(ctx)
}

func (c *Cli) printVersion() {
	c.io.Printf("LightNotes Client\n")
	c.io.Printf("Version:    %s\n", c.version.Version)
	c.io.Printf("Build Date: %s\n", c.version.BuildDate)
	c.io.Printf("Git Commit: %s\n", c.version.GitCommit)
}
