package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deusflow/trenddigest/internal/app"
	"github.com/deusflow/trenddigest/internal/logger"
	"github.com/deusflow/trenddigest/internal/metrics"
	"github.com/deusflow/trenddigest/internal/server"
)

func serveCmd() *cobra.Command {
	var addrFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the trend document over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, os.Stdout)
			if err != nil {
				return err
			}
			if addrFlag != "" {
				cfg.BindAddr = addrFlag
			}

			pipeline := app.NewFromConfig(cfg, logger.Logger, metrics.Global)
			srv := server.New(pipeline, metrics.Global, cfg.BindAddr, cfg.RequestTimeout, logger.Logger.With("component", "server"))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting trenddigest server",
				"addr", cfg.BindAddr,
				"feed", cfg.FeedURL,
				"lookup_concurrency", cfg.LookupConcurrency,
			)
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (default from BIND_ADDR or :8080)")
	return cmd
}
