// Package worker runs the background jobs of the backoffice on river.
package worker

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/events"
	"backoffice/internal/orders"
	"backoffice/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configures the river client started by Start.
type Options struct {
	// MaxWorkers is the number of notification jobs processed concurrently.
	MaxWorkers int
	// JobTimeout bounds the processing time of a single job.
	JobTimeout time.Duration
}

// NewOptions builds worker options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
		JobTimeout: cfg.Worker.JobTimeout,
	}
}

// Start registers the workers and starts a river client processing their queues.
func Start(
	ctx context.Context,
	dbPool *pgxpool.Pool,
	publisher events.Publisher,
	opts Options,
) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewNewOrderWorker(publisher))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			orders.NotificationQueue: {MaxWorkers: max(opts.MaxWorkers, 1)},
		},
		JobTimeout: opts.JobTimeout,
		Workers:    workers,
		Logger:     logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
