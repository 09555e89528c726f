package main

import (
	"github.com/storelink/storelink-backend/config"
	"github.com/storelink/storelink-backend/internal/db"
	"github.com/storelink/storelink-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logger.Initialize(logger.Config{
		Level:       cfg.Server.LogLevel,
		Format:      cfg.Server.LogFormat,
		EnableColor: cfg.Server.Environment == "development",
	})

	logger.Info("Running StoreLink schema migration", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"database":    cfg.Database.DBName,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations and seed the default payment options
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	logger.Info("Migration completed successfully")
}
