package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/lightnotes/internal/client/remote"
)

// runConfig показывает или сохраняет адрес удаленного хранилища и токен.
// Новая конфигурация применяется при следующем запуске команды или демона.
func (c *Cli) runConfig(ctx context.Context, args []string) error {
	if c.config == nil {
		return ErrLocalOnly
	}

	fs := newFlagSet("config")
	token := fs.String("token", "", "bearer token; prompted when omitted")
	disconnect := fs.Bool("clear", false, "remove the remote configuration")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w. Usage: lightnotes config [-token T] [-clear] [URL]", err)
	}

	if *disconnect {
		if err := c.config.Save(ctx, remote.Config{}); err != nil {
			return fmt.Errorf("failed to clear remote config: %w", err)
		}
		c.io.Println("✓ Remote storage disconnected. Notes stay local.")
		return nil
	}

	if fs.NArg() == 0 {
		return c.showConfig(ctx)
	}

	cfg := remote.Config{
		BaseURL: strings.TrimSpace(fs.Arg(0)),
		Token:   strings.TrimSpace(*token),
	}
	if cfg.Token == "" {
		t, err := c.io.ReadPassword("Token: ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		cfg.Token = strings.TrimSpace(t)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid remote config: %w", err)
	}
	if err := c.config.Save(ctx, cfg); err != nil {
		return fmt.Errorf("failed to save remote config: %w", err)
	}

	c.io.Println("✓ Remote storage configured")
	c.io.Printf("URL:   %s\n", cfg.BaseURL)
	c.io.Printf("Token: %s\n", maskToken(cfg.Token))
	c.io.Println()
	c.io.Println("Run 'lightnotes sync' to merge remote notes.")
	return nil
}

func (c *Cli) showConfig(ctx context.Context) error {
	cfg, err := c.config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load remote config: %w", err)
	}

	if !cfg.Configured() {
		c.io.Println("Remote storage: not configured")
		c.io.Println()
		c.io.Println("Run 'lightnotes config <url>' to connect.")
		return nil
	}

	c.io.Printf("URL:   %s\n", cfg.BaseURL)
	c.io.Printf("Token: %s\n", maskToken(cfg.Token))
	return nil
}
