package main

import (
	"fmt"
	"text/tabwriter"

	"staff-match/internal/app"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withContainer(cmd.Context(), func(c *app.Container) error {
				if !status {
					return c.Migrate(cmd.Context())
				}
				states, err := c.MigrationStatus(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tNAME\tAPPLIED")
				for _, st := range states {
					fmt.Fprintf(w, "%d\t%s\t%t\n", st.Version, st.Name, st.Applied)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "list migrations and whether they are applied instead of applying them")
	return cmd
}
