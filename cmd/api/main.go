package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/rates"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

func main() {
	log := logger.New(os.Getenv("ENV"))
	defer logger.Sync(log)

	if err := run(log); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(log *zap.SugaredLogger) error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database
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

	// Initialize services
	db := dbManager.DB()
	transactionService := services.NewTransactionService(db, log)
	budgetService := services.NewBudgetService(db, log)
	rateClient := rates.NewClient(appConfig.RatesBaseURL, appConfig.RatesTimeout, log)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService, log)
	budgetHandler := handlers.NewBudgetHandler(budgetService, transactionService, log)
	reportHandler := handlers.NewReportHandler(transactionService, log)
	currencyHandler := handlers.NewCurrencyHandler(rateClient, log)
	adminHandler := handlers.NewAdminHandler(dbManager, log)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging(log))
	router.Use(middleware.ErrorHandler(log))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.PUT("", budgetHandler.SetBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/status", budgetHandler.GetBudgetStatus)

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/export", reportHandler.ExportCSV)

	// Currency conversion
	v1.POST("/currency/convert", currencyHandler.Convert)

	// Maintenance
	v1.POST("/admin/reset", adminHandler.Reset)

	log.Infof("Starting fintrack server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
