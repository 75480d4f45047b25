package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/iudanet/lightnotes/internal/logging"
	"github.com/iudanet/lightnotes/internal/server"
	"github.com/iudanet/lightnotes/internal/server/config"
	"github.com/iudanet/lightnotes/internal/server/handlers"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if secret := os.Getenv("LIGHTNOTES_JWT_SECRET"); secret != "" {
		cfg.Auth.Secret = secret
	}
	if err := config.LoadOrDefault(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	logger.Info("starting lightnotes server",
		"version", Version,
		"addr", cfg.HTTP.Addr,
		"storage", cfg.Storage.Driver,
	)

	srv, err := server.New(ctx, cfg, logger, Version)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func runToken(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	jwtCfg := server.JWTConfig(cfg.Auth)
	if cmd.IsSet("ttl") {
		jwtCfg.TokenTTL = cmd.Duration("ttl")
	}

	token, expiresAt, err := handlers.GenerateToken(jwtCfg, cmd.String("client"))
	if err != nil {
		return err
	}

	fmt.Println(token)
	if !expiresAt.IsZero() {
		fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
	}
	return nil
}

func main() {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to config file",
		Value:   "config/server.yaml",
		Sources: cli.EnvVars("LIGHTNOTES_CONFIG_FILE"),
	}

	cmd := &cli.Command{
		Name:    "lightnotes-server",
		Usage:   "Object store endpoint for lightnotes sync",
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
		Flags:   []cli.Flag{configFlag},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run HTTP endpoint",
				Action: runServe,
			},
			{
				Name:  "token",
				Usage: "Issue bearer token for a client",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "client",
						Usage:    "Client (device) name stored in the token",
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "ttl",
						Usage: "Token lifetime, 0 for non-expiring (overrides auth.token_ttl)",
					},
				},
				Action: runToken,
			},
		},
		DefaultCommand: "serve",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
