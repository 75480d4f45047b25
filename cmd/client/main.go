package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iudanet/lightnotes/internal/client/cli"
	"github.com/iudanet/lightnotes/internal/client/daemon"
	"github.com/iudanet/lightnotes/internal/client/iocli"
	"github.com/iudanet/lightnotes/internal/client/notes"
	"github.com/iudanet/lightnotes/internal/client/queue"
	"github.com/iudanet/lightnotes/internal/client/remote"
	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/client/storage/boltdb"
	"github.com/iudanet/lightnotes/internal/client/storage/filestore"
	"github.com/iudanet/lightnotes/internal/client/sync"
	"github.com/iudanet/lightnotes/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	dir := flag.String("dir", defaultDir(), "Notes directory")
	dbPath := flag.String("db", "", "Sync state database (default: <dir>/sync.db)")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()

	logger, closer, err := logging.New(logging.Options{Level: *logLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := filestore.New(*dir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open notes directory: %v\n", err)
		return 1
	}

	deps := cli.Deps{
		IO:      iocli.NewStdio(),
		Stdin:   os.Stdin,
		Store:   store,
		Logger:  logger,
		DataDir: store.Dir(),
		Version: cli.VersionInfo{Version: Version, BuildDate: BuildDate, GitCommit: GitCommit},
	}

	if *dbPath == "" {
		*dbPath = filepath.Join(store.Dir(), "sync.db")
	}

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	switch {
	case errors.Is(err, storage.ErrStorageLocked):
		// Демон держит базу: правки только локальные, демон увидит их через файлы
		logger.Debug("Sync state is locked, running in local-only mode", "db", *dbPath)
		deps.LockedDB = true
		deps.Notes = notes.NewService(store, nil, logger)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	default:
		defer func() {
			if err := boltStorage.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}()
		if err := wire(ctx, &deps, boltStorage, store, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := cli.New(deps).Run(ctx, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// wire собирает синхронизацию, сервис заметок и демон поверх открытой базы
func wire(ctx context.Context, deps *cli.Deps, bs *boltdb.Storage, store *filestore.Store, logger *slog.Logger) error {
	configKV := boltdb.NewKV[remote.Config](bs, boltdb.BucketSettings, boltdb.KeyRemote)
	cfg, err := configKV.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load remote config: %w", err)
	}

	cache := remote.NewETagCache(boltdb.NewKV[map[string]string](bs, boltdb.BucketSync, boltdb.KeyETags))
	client := remote.NewClient(cfg, cache, logger)

	// Демон создается после сервиса синхронизации, которому нужны его Wake и Flush
	var d *daemon.Daemon
	syncSvc := sync.NewService(client, store, boltdb.NewKV[[]queue.Op](bs, boltdb.BucketSync, boltdb.KeyQueue), sync.Options{
		Wake: func() {
			if d != nil {
				d.Wake()
			}
		},
		Flush: func(ctx context.Context) error {
			if d == nil {
				return nil
			}
			return d.Flush(ctx)
		},
	}, logger)

	notesSvc := notes.NewService(store, syncSvc, logger)
	d = daemon.New(syncSvc, notesSvc, client, bs, daemon.Config{Dir: store.Dir(), Signals: true}, logger)

	deps.Notes = notesSvc
	deps.Syncer = syncSvc
	deps.Config = configKV
	deps.Meta = bs
	deps.Daemon = d.Run
	return nil
}

func defaultDir() string {
	if dir := os.Getenv("LIGHTNOTES_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lightnotes"
	}
	return filepath.Join(home, ".lightnotes")
}
