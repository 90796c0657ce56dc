package main

import (
	"staff-match/internal/app"
	"staff-match/internal/database/seeder"

	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the skill catalog, and optionally demo candidates and jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				seeders := seeder.Defaults()
				if demo {
					seeders = seeder.WithDemo()
				}
				r := seeder.Runner{Seeders: seeders, Logger: c.Logger.Named("seeder")}
				return r.Run(cmd.Context(), c.DB)
			})
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "also upsert demo candidates and jobs")
	return cmd
}
