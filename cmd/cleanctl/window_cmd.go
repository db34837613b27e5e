package main

import (
	"encoding/json"
	"time"

	"cleaning-ops-backend/internal/service"

	"github.com/spf13/cobra"
)

type windowOptions struct {
	At string
}

func newWindowCmd() *cobra.Command {
	var opts windowOptions

	cmd := &cobra.Command{
		Use:   "window [--at YYYY-MM-DD]",
		Short: "Print the claim window for today or a given date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			now := time.Now()
			if opts.At != "" {
				at, err := service.ParseDate(opts.At)
				if err != nil {
					return err
				}
				// noon keeps the civil date stable in any CLAIM_TIMEZONE
				now = time.Date(at.Year(), at.Month(), at.Day(), 12, 0, 0, 0, cfg.Location())
			}

			window := service.NewAvailabilityPolicyFromConfig(cfg).WindowFor(now)
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(window.Response())
		},
	}

	cmd.Flags().StringVar(&opts.At, "at", "", "date to compute the window for")

	return cmd
}
