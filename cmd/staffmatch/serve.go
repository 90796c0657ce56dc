package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"staff-match/internal/app"
	"staff-match/internal/telemetry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the matching and sync HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return opts.withContainer(ctx, func(c *app.Container) error {
				log := c.Logger
				log.Info("starting", zap.String("version", version))

				shutdownTracer, err := telemetry.InitTracer(ctx,
					c.Config.Telemetry.ServiceName, c.Config.Telemetry.OTLPEndpoint, version, log)
				if err != nil {
					return err
				}
				defer shutdownTracer()

				if migrate {
					migCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
					err := c.Migrate(migCtx)
					cancel()
					if err != nil {
						return err
					}
				}

				a, err := app.New(c)
				if err != nil {
					return err
				}
				return a.Run(ctx)
			})
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply schema migrations before serving")
	return cmd
}
