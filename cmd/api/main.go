package main

import (
	"fmt"
	"os"

	"fluxo/internal/config"
	"fluxo/internal/database"
	"fluxo/internal/logger"
	"fluxo/internal/router"
)

// @title           Fluxo API
// @version         1.0
// @description     Fluxo is a personal finance tracker: monthly income and expenses, installments and recurring bills, per-category breakdowns and a twelve-month projection.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	engine := router.New(dbManager.DB(), router.Options{})

	log.Infof("Starting Fluxo server on port %s (driver %s)", appConfig.Port, dbConfig.Driver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return engine.Run(":" + appConfig.Port)
}
