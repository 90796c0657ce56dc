package main

import (
	"context"
	"fmt"

	"staff-match/internal/app"
	"staff-match/internal/config"
	"staff-match/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "staffmatch"

// version is set at build time.
var version = "dev"

type rootOptions struct {
	configFile string
	debug      bool
	json       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "staffmatch scores candidates against jobs and syncs them from Workable",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file layered under the environment (yaml, toml, json or env)")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	cmd.PersistentFlags().BoolVarP(&opts.json, "json", "j", false, "json format for logging")

	cmd.AddCommand(
		newServeCmd(opts),
		newSyncCmd(opts),
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newTokenCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// load reads the config and builds the logger, flags overriding the environment.
func (o *rootOptions) load() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(o.json || cfg.Log.JSON, o.debug || cfg.Log.Debug)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("creating a logger: %w", err)
	}
	return cfg, log.With(zap.String("env", cfg.App.Environment)), nil
}

// withContainer runs fn against a connected container and closes it afterwards.
func (o *rootOptions) withContainer(ctx context.Context, fn func(c *app.Container) error) error {
	cfg, log, err := o.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	c, err := app.NewContainer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Warn("close container", zap.Error(err))
		}
	}()
	return fn(c)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", appName, version)
		},
	}
}
