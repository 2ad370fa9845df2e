package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-analytics/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	Long:  `Applies the embedded schema migrations to the target PostgreSQL database. Use --down to roll back the most recent migration instead.`,
	RunE:  runMigrate,
}

var (
	migrateDatabaseURL string
	migrateDown        bool
)

func init() {
	migrateCmd.Flags().StringVar(&migrateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the most recent migration")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := migrateDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	if migrateDown {
		if err := db.MigrateDown(ctx, databaseURL); err != nil {
			return fmt.Errorf("migration rollback failed: %w", err)
		}
		fmt.Println("Rolled back the most recent migration")
		return nil
	}

	if err := db.Migrate(ctx, databaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Println("Migrations applied")
	return nil
}
