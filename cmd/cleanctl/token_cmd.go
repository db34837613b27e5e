package main

import (
	"errors"
	"fmt"

	"cleaning-ops-backend/internal/auth"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type tokenOptions struct {
	UserID string
	Config string
}

func newTokenCmd() *cobra.Command {
	var opts tokenOptions

	cmd := &cobra.Command{
		Use:   "token --user <uuid>",
		Short: "Issue a bearer token for local testing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.UserID == "" {
				return errors.New("--user is required")
			}
			userID, err := uuid.Parse(opts.UserID)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}

			authConfig, err := auth.LoadAuthConfig(opts.Config)
			if err != nil {
				return err
			}
			authService, err := auth.NewAuthService(authConfig)
			if err != nil {
				return err
			}

			token, err := authService.GenerateJWT(userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.UserID, "user", "", "user UUID to put in the token subject")
	cmd.Flags().StringVar(&opts.Config, "auth-config", "", "path to auth.yaml (default: ./auth.yaml or ./config/auth.yaml)")

	return cmd
}
