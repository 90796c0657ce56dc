package main

import (
	"encoding/json"

	"staff-match/internal/app"

	"github.com/spf13/cobra"
)

const triggerCLI = "cli"

func newSyncCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one Workable sync and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				res, err := c.Sync.Run(cmd.Context(), triggerCLI)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			})
		},
	}
}
