package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"art-auction-backend/internal/config"
	"art-auction-backend/internal/database"
	"art-auction-backend/internal/logger"
)

// art-auction migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Configure(cfg.LogLevel)

		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required to run migrations")
		}
		return runMigrations(cfg.DatabaseURL)
	},
}

func runMigrations(dbURL string) error {
	migrator, err := database.NewMigrator(dbURL)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}
	defer migrator.Close()

	applied, err := migrator.Run()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("migrations completed", map[string]any{"applied": applied})
	return nil
}
