package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budgetd/internal/config"
	"budgetd/internal/database"
	"budgetd/internal/handlers"
	"budgetd/internal/importer"
	custommw "budgetd/internal/middleware"
	"budgetd/internal/repositories"
	"budgetd/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	accountRepo := repositories.NewAccountRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	groupRepo := repositories.NewCategoryGroupRepository(db)
	txnRepo := repositories.NewTransactionRepository(db)
	entryRepo := repositories.NewBudgetEntryRepository(db)
	monthlyBudgetRepo := repositories.NewMonthlyBudgetRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	accountService := services.NewAccountService(accountRepo)
	categoryService := services.NewCategoryService(categoryRepo, groupRepo)
	transactionService := services.NewTransactionService(txnRepo, categoryRepo, metrics)
	rolloverService := services.NewRolloverService(entryRepo, categoryRepo, txnRepo, metrics, nil)
	summaryService := services.NewSummaryService(accountRepo, categoryRepo, txnRepo, entryRepo, monthlyBudgetRepo, rolloverService, metrics)
	monthlyBudgetService := services.NewMonthlyBudgetService(monthlyBudgetRepo)
	sampleDataService := services.NewSampleDataService(accountRepo, groupRepo, categoryRepo, txnRepo, nil)
	csvImporter := importer.NewCSVImporter(transactionService, categoryRepo, accountRepo, metrics, cfg.Budget.MaxImportRows)

	if cfg.Budget.SeedSampleData && cfg.IsDevelopment() {
		if err := sampleDataService.Seed(); err != nil {
			slog.Error("Sample data seeding failed", "error", err)
		}
	}

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	accountHandler := handlers.NewAccountHandler(accountService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, summaryService, csvImporter)
	budgetHandler := handlers.NewBudgetHandler(rolloverService, summaryService, monthlyBudgetService, cfg.Budget.CurrencyCode)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.BodyLimit(cfg.Security.MaxRequestBodySize))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/accounts", accountHandler.CreateAccount)
	api.GET("/accounts", accountHandler.ListAccounts)
	api.GET("/accounts/:accountId", accountHandler.GetAccount)
	api.PUT("/accounts/:accountId", accountHandler.UpdateAccount)
	api.DELETE("/accounts/:accountId", accountHandler.DeleteAccount)

	api.POST("/categories", categoryHandler.CreateCategory)
	api.GET("/categories", categoryHandler.ListCategories)
	api.GET("/categories/:categoryId", categoryHandler.GetCategory)
	api.PUT("/categories/:categoryId", categoryHandler.UpdateCategory)
	api.DELETE("/categories/:categoryId", categoryHandler.DeleteCategory)

	api.POST("/category-groups", categoryHandler.CreateGroup)
	api.GET("/category-groups", categoryHandler.ListGroups)
	api.DELETE("/category-groups/:groupId", categoryHandler.DeleteGroup)

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/running-balance", transactionHandler.GetRunningBalance)
	api.POST("/transactions/import", transactionHandler.ImportTransactions)
	api.GET("/transactions/:transactionId", transactionHandler.GetTransaction)
	api.DELETE("/transactions/:transactionId", transactionHandler.DeleteTransaction)

	api.GET("/budget/categories/:categoryId/history", budgetHandler.GetCategoryHistory)
	api.GET("/budget/:month", budgetHandler.GetMonthSummary)
	api.GET("/budget/:month/ready-to-assign", budgetHandler.GetReadyToAssign)
	api.GET("/budget/:month/comparisons", budgetHandler.GetComparisons)
	api.GET("/budget/:month/categories/:categoryId", budgetHandler.GetCategoryEntry)
	api.PUT("/budget/:month/categories/:categoryId", budgetHandler.SetBudgetedAmount)

	api.GET("/monthly-budgets", budgetHandler.ListMonthlyBudgets)
	api.GET("/monthly-budgets/:month", budgetHandler.GetMonthlyBudget)
	api.PUT("/monthly-budgets/:month", budgetHandler.UpsertMonthlyBudget)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(sampleDataService)
		e.POST("/dev/seed", devHandler.SeedSampleData)
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	address := cfg.Server.Host + ":" + cfg.Server.Port
	slog.Info("Starting budgetd server", "address", address, "environment", cfg.Server.Environment)
	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped gracefully")
}

func setupLogging(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
