package main

import (
	"fmt"
	"time"

	"cleaning-ops-backend/internal/database"
	"cleaning-ops-backend/internal/seed"
	"cleaning-ops-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if _, err := database.Initialize(cfg.DatabaseURL, nil); err != nil {
				return err
			}
			logrus.Info("schema is up to date")
			return nil
		},
	}
}

type seedOptions struct {
	File string
}

func newSeedCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed --file <path>",
		Short: "Load tenants, teams, properties and cleanings from YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			file, err := seed.Load(opts.File)
			if err != nil {
				return fmt.Errorf("load seed data: %w", err)
			}

			db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Silent})
			if err != nil {
				return err
			}

			today := service.CivilDate(time.Now(), cfg.Location())
			summary, err := seed.Apply(cmd.Context(), db, file, today)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %d tenants, %d teams, %d memberships, %d properties, %d cleanings\n",
				summary.Tenants, summary.Teams, summary.Memberships, summary.Properties, summary.Cleanings)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "config/seed.example.yaml", "YAML file or directory of YAML files")

	return cmd
}
