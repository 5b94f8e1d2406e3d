package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"slotsync/core/config"
	"slotsync/core/constants"
	"slotsync/core/logger"
	"slotsync/core/middleware"
	"slotsync/core/storage"
	"slotsync/core/tasks"
	"slotsync/modules/admin"
	"slotsync/modules/room"
)

// Run builds the storage stack, wires the modules and serves HTTP until a
// termination signal arrives.
func Run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Env)

	ctx := context.Background()
	store, pg := buildStorage(ctx, cfg)

	var cleanup *tasks.Runner
	if cfg.Cleanup.Enabled && pg != nil && cfg.Redis.URL != "" {
		cleanup, err = tasks.StartCleanup(cfg.Redis.URL, cfg.Cleanup.Interval, pg)
		if err != nil {
			logger.Warn("cleanup not started", "error", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.New()
	mw.Setup(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	room.Init(e, store, cfg, mw)
	admin.Init(e, store, mw)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", cfg.HTTP.Address, "env", cfg.Env)
		errCh <- e.Start(cfg.HTTP.Address)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	if cleanup != nil {
		cleanup.Shutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, constants.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// buildStorage assembles the provider stack: Redis over Postgres over the
// in-process memory store, with each tier degrading to the next. A tier
// that fails to connect at boot is logged and skipped rather than fatal.
func buildStorage(ctx context.Context, cfg *config.Config) (storage.Provider, *storage.PostgresProvider) {
	mem := storage.NewMemoryProvider()

	var pg *storage.PostgresProvider
	if cfg.Postgres.DSN != "" {
		provider, err := storage.NewPostgresProvider(ctx, cfg.Postgres.DSN)
		if err != nil {
			logger.Warn("postgres provider unavailable", "error", err)
		} else {
			pg = provider
		}
	}

	var redis storage.Provider
	if cfg.Redis.URL != "" {
		provider, err := storage.NewRedisProvider(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("redis provider unavailable, degrading", "error", err)
		} else {
			redis = provider
		}
	}

	// Chain redis over postgres over memory; any tier that is missing
	// drops out and the next one moves up.
	store := storage.Provider(mem)
	if pg != nil {
		store = storage.NewFailover(pg, store, cfg.Room.TTL)
	}
	if redis != nil {
		store = storage.NewFailover(redis, store, cfg.Room.TTL)
	}
	if store == storage.Provider(mem) {
		logger.Info("no durable store configured, using memory only")
	}
	return store, pg
}
