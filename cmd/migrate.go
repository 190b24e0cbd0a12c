package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/podintel/podintel-api/internal/database"
	"github.com/podintel/podintel-api/internal/models"
	"github.com/podintel/podintel-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	Long: `Bring the database schema up to date without starting the server.

The serve command migrates on startup; this command exists for running
migrations separately, for example during deploys.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().String("database", "", "database path (overrides config)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	path := cfg.Database.Path
	if flagPath, _ := cmd.Flags().GetString("database"); flagPath != "" {
		path = flagPath
	}

	db, err := database.Initialize(database.Options{
		Path:      path,
		EnableWAL: cfg.Database.EnableWAL,
		Verbose:   cfg.Database.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[WARN] Failed to close database: %v", err)
		}
	}()

	if err := db.AutoMigrate(&models.Podcast{}, &models.Episode{}, &models.Job{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied to %s\n", path)
	return nil
}
