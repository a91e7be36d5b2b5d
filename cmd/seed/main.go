package main

import (
	"context"
	"flag"
	"log"

	"finsort/internal/repository"
	"finsort/pkg/config"
	"finsort/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	force := flag.Bool("force", false, "overwrite existing taxonomy files")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	appLogger.Info("Starting taxonomy seeding...",
		zap.String("expense_file", cfg.Taxonomy.ExpenseFile),
		zap.String("income_file", cfg.Taxonomy.IncomeFile),
		zap.Bool("force", *force),
	)

	repo := repository.NewTaxonomyRepository(cfg.Taxonomy.ExpenseFile, cfg.Taxonomy.IncomeFile, appLogger)
	written, err := repo.Seed(context.Background(), *force)
	if err != nil {
		appLogger.Fatal("Failed to seed taxonomy", zap.Error(err))
	}

	if !written {
		appLogger.Info("Nothing to seed, taxonomy files already present")
		return
	}
	appLogger.Info("Taxonomy seeding completed successfully!")
}
