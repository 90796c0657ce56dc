package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"staff-match/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the guarded sync trigger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}
			if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
				return errors.New("AUTH_JWT_SECRET is not set")
			}
			if role == "" {
				role = cfg.Auth.Role
			}
			tok, err := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.App.AppName).Issue(role, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "token role (defaults to AUTH_REQUIRED_ROLE)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime, 0 for none")
	return cmd
}
