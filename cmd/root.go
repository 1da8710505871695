package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lifeline-labs/organ-backend-go/internal/api"
	"github.com/lifeline-labs/organ-backend-go/internal/config"
	"github.com/lifeline-labs/organ-backend-go/internal/database"
	"github.com/lifeline-labs/organ-backend-go/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		log := logger.NewLogger()
		defer log.Sync()

		db, err := database.Open(database.Config{Path: cfg.DBPath})
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		router, err := api.SetupRouter(cfg, db, log)
		if err != nil {
			return fmt.Errorf("setup router: %w", err)
		}

		log.Info("server starting", zap.String("port", cfg.Port))
		return router.Run(cfg.Port)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample hospitals and organ availability",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()

		db, err := database.Open(database.Config{Path: cfg.DBPath})
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if err := database.Seed(db); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}

		fmt.Println("Sample data initialized successfully")
		return nil
	},
}

// Execute runs the CLI
func Execute() {
	rootCmd := &cobra.Command{
		Use:   "organ-backend",
		Short: "Organ transplant hospital locator and navigation service",
	}
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
