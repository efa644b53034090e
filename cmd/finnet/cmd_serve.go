package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vanshika/finnet/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the path and analysis API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	svc, client, cleanup, err := a.loadService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	var metrics *server.Metrics
	if a.cfg.HTTP.MetricsEnabled {
		metrics = server.NewMetrics()
	}

	router := server.NewRouter(a.logger, server.RouterDependencies{
		Health:           server.NetworkHealthService{Network: svc, Client: client},
		API:              server.NewAPIHandlers(a.logger, svc),
		Metrics:          metrics,
		AllowedOrigins:   a.cfg.HTTP.AllowedOrigins(),
		AllowCredentials: true,
	})

	return server.New(a.logger, a.cfg.HTTP, router).Run(ctx)
}
