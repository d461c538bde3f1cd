package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"fintrack/internal/cli"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/rates"
	"fintrack/internal/services"
)

func main() {
	log := logger.New(os.Getenv("ENV"))
	defer logger.Sync(log)

	if err := run(log); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(log *zap.SugaredLogger) error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig, log)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	transactionService := services.NewTransactionService(db, log)
	budgetService := services.NewBudgetService(db, log)
	rateClient := rates.NewClient(appConfig.RatesBaseURL, appConfig.RatesTimeout, log)

	shell := cli.New(
		transactionService,
		budgetService,
		rateClient,
		dbManager,
		appConfig.ExportFile,
		log,
		os.Stdin,
		os.Stdout,
	)
	shell.Run()
	return nil
}
