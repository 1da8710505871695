package main

import (
	"log"

	"github.com/lifeline-labs/organ-backend-go/internal/api"
	"github.com/lifeline-labs/organ-backend-go/internal/config"
	"github.com/lifeline-labs/organ-backend-go/internal/database"
	"github.com/lifeline-labs/organ-backend-go/internal/logger"
)

// Standalone server entrypoint, equivalent to `organ-backend serve`
func main() {
	cfg := config.Load()
	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	router, err := api.SetupRouter(cfg, db, zapLogger)
	if err != nil {
		log.Fatal("Failed to setup router:", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
