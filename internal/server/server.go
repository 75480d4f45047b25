// Package server собирает HTTP эндпоинт хранилища объектов: роутер, middleware,
// выбор backend и жизненный цикл http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/lightnotes/internal/server/config"
	"github.com/iudanet/lightnotes/internal/server/handlers"
	"github.com/iudanet/lightnotes/internal/server/middleware"
	"github.com/iudanet/lightnotes/internal/server/storage"
	"github.com/iudanet/lightnotes/internal/server/storage/memory"
	s3storage "github.com/iudanet/lightnotes/internal/server/storage/s3"
	"github.com/iudanet/lightnotes/internal/server/storage/sqlite"
	"github.com/iudanet/lightnotes/pkg/api"
)

// Options параметры роутера
type Options struct {
	Version     string
	CORSOrigins []string
	JWT         handlers.JWTConfig
	RateLimit   int
	RateWindow  time.Duration
	MaxBodySize int64
	TrustProxy  bool
}

// NewRouter создает роутер эндпоинта.
// /health доступен без токена, остальные пути требуют bearer токен.
// Возвращаемая функция останавливает фоновые задачи middleware.
func NewRouter(logger *slog.Logger, store storage.ObjectStorage, opts Options) (http.Handler, func()) {
	health := handlers.NewHealthHandler(logger, opts.Version)
	objects := handlers.NewObjectHandler(logger, store, opts.MaxBodySize)

	r := chi.NewRouter()
	r.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger, "/"+api.HealthPath),
		middleware.CORSMiddleware(opts.CORSOrigins),
	)

	stop := func() {}
	if opts.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(opts.RateLimit, opts.RateWindow, logger).TrustProxy(opts.TrustProxy)
		r.Use(limiter.Middleware)
		stop = limiter.Stop
	}

	r.Get("/"+api.HealthPath, health.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(logger, opts.JWT))

		r.Get("/"+api.ListPath, objects.List)
		r.Head("/*", objects.Head)
		r.Get("/*", objects.Get)
		r.Put("/*", objects.Put)
		r.Delete("/*", objects.Delete)
	})

	return r, stop
}

// OpenStorage открывает backend по конфигурации
func OpenStorage(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (storage.ObjectStorage, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nopCloser{}, nil
	case config.DriverSQLite:
		if cfg.SQLite.Path != sqlite.MemoryPath {
			if err := os.MkdirAll(filepath.Dir(cfg.SQLite.Path), 0o750); err != nil {
				return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		s, err := sqlite.New(ctx, cfg.SQLite.Path, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.DriverS3:
		s, err := s3storage.New(ctx, s3storage.Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Server HTTP сервер эндпоинта
type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
	closer     io.Closer
	stop       func()
	shutdown   time.Duration
}

// New открывает хранилище и собирает сервер по конфигурации
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, version string) (*Server, error) {
	store, closer, err := OpenStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	router, stop := NewRouter(logger, store, Options{
		Version:     version,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		JWT:         JWTConfig(cfg.Auth),
		RateLimit:   cfg.HTTP.RateLimit,
		RateWindow:  cfg.HTTP.RateWindow,
		MaxBodySize: cfg.HTTP.MaxBodySize,
		TrustProxy:  cfg.HTTP.TrustProxy,
	})

	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		closer:   closer,
		stop:     stop,
		shutdown: cfg.HTTP.ShutdownTimeout,
	}, nil
}

// JWTConfig переводит секцию auth в конфигурацию токенов
func JWTConfig(cfg config.AuthConfig) handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:   []byte(cfg.Secret),
		TokenTTL: cfg.TokenTTL,
	}
}

// Run слушает адрес до отмены ctx, затем корректно останавливает сервер
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.release()
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на готовом listener до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.release()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server started", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	timeout := s.shutdown
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func (s *Server) release() {
	s.stop()
	if err := s.closer.Close(); err != nil {
		s.logger.Error("failed to close storage", "error", err)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
