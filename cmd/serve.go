package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"backoffice/internal/accounts"
	"backoffice/internal/api"
	"backoffice/internal/api/handler/v1handler"
	"backoffice/internal/catalog"
	"backoffice/internal/config"
	"backoffice/internal/events"
	"backoffice/internal/orders"
	"backoffice/internal/worker"
	"backoffice/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}
	// Shutdown waits for active connections, open event streams must end first
	server.RegisterOnShutdown(deps.Events.Close)

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupPublisher returns the publisher workers hand new-order events to. With
// Redis configured events travel through the bus and every instance forwards
// them into its local hub, otherwise the hub is published to directly.
func setupPublisher(ctx context.Context, cfg *config.Config, hub *events.Hub) (events.Publisher, func()) {
	if cfg.Redis.Addr == "" {
		return hub, func() {}
	}

	bus, err := events.NewRedisBus(ctx, events.NewRedisOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}
	err = bus.StartForwarder(ctx, func(ctx context.Context, msg events.Message) {
		hub.Broadcast(ctx, msg)
	})
	if err != nil {
		logger.Fatal(ctx, "could not subscribe to redis channel", zap.Error(err))
	}

	return bus, func() {
		logger.Info(ctx, "closing redis client...")
		if err := bus.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			hub := events.NewHub(events.NewOptions(cfg))
			publisher, closePublisher := setupPublisher(ctx, cfg, hub)
			defer closePublisher()

			riverClient, err := worker.Start(ctx, strg.Pool, publisher, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Catalog:  catalog.New(strg, catalog.NewOptions(cfg)),
				Accounts: accounts.New(strg),
				Orders:   orders.New(strg),
				Events:   hub,
			}, Storage: strg})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
