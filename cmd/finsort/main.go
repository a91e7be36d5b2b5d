package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finsort/internal/api"
	"finsort/internal/api/handlers"
	"finsort/internal/classifier"
	"finsort/internal/repository"
	"finsort/internal/service"
	"finsort/pkg/config"
	"finsort/pkg/logger"

	"go.uber.org/zap"
)

// @title finsort API
// @version 1.0
// @description Bank statement import, keyword classification and category totals

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting finsort service")

	ctx := context.Background()

	// The taxonomy must be readable before serving anything.
	taxonomyRepo := repository.NewTaxonomyRepository(cfg.Taxonomy.ExpenseFile, cfg.Taxonomy.IncomeFile, appLogger)
	tax, err := taxonomyRepo.Load(ctx)
	if err != nil {
		appLogger.Fatal("Failed to load taxonomy", zap.Error(err))
	}
	appLogger.Info("Taxonomy loaded",
		zap.Int("expense_categories", len(tax.Expense)),
		zap.Int("income_categories", len(tax.Income)),
	)

	fileStore, err := repository.NewFileStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open file store", zap.Error(err))
	}
	defer fileStore.Close()

	// Initialize services
	taxonomyService := service.NewTaxonomyService(taxonomyRepo, appLogger)
	importService := service.NewImportService(
		taxonomyService,
		fileStore,
		classifier.Options{DefaultLabel: cfg.Taxonomy.DefaultLabel},
		appLogger,
	)
	fileService := service.NewFileService(fileStore, appLogger)

	// Initialize handlers
	importHandler := handlers.NewImportHandler(importService, appLogger)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService, appLogger)
	fileHandler := handlers.NewFileHandler(fileService, importService, appLogger)

	// Setup router
	app := api.SetupRouter(importHandler, taxonomyHandler, fileHandler, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
