package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"slotsync/core/logger"
	"slotsync/core/storage"
)

// TypeRoomsCleanup purges expired rows from the Postgres provider. Redis
// and the memory store expire entries natively; Postgres needs the sweep.
const TypeRoomsCleanup = "rooms:cleanup"

// CleanupHandler processes the periodic purge task.
type CleanupHandler struct {
	pg *storage.PostgresProvider
}

func NewCleanupHandler(pg *storage.PostgresProvider) *CleanupHandler {
	return &CleanupHandler{pg: pg}
}

func (h *CleanupHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	purged, err := h.pg.PurgeExpired(ctx)
	if err != nil {
		logger.Error("rooms cleanup failed", "error", err)
		return err
	}
	logger.Info("rooms cleanup done", "purged", purged)
	return nil
}

// Runner owns the asynq worker and scheduler pair.
type Runner struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
}

// StartCleanup wires a periodic rooms:cleanup task through asynq, using
// the same Redis the storage layer uses as the broker.
func StartCleanup(redisURL string, interval time.Duration, pg *storage.PostgresProvider) (*Runner, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}

	srv := asynq.NewServer(opt, asynq.Config{Concurrency: 1})
	mux := asynq.NewServeMux()
	mux.Handle(TypeRoomsCleanup, NewCleanupHandler(pg))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start cleanup worker: %w", err)
	}

	scheduler := asynq.NewScheduler(opt, nil)
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeRoomsCleanup, nil)); err != nil {
		srv.Shutdown()
		return nil, fmt.Errorf("register cleanup schedule: %w", err)
	}
	if err := scheduler.Start(); err != nil {
		srv.Shutdown()
		return nil, fmt.Errorf("start cleanup scheduler: %w", err)
	}

	logger.Info("rooms cleanup scheduled", "interval", interval.String())
	return &Runner{server: srv, scheduler: scheduler}, nil
}

func (r *Runner) Shutdown() {
	r.scheduler.Shutdown()
	r.server.Shutdown()
}
