package main

import (
	"fmt"
	"os"

	"finsort/internal/commands"
	"finsort/pkg/config"
	"finsort/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.Logger.Level, logger.Console)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = appLogger.Sync() }()

	if err := commands.NewRootCommand(cfg.Taxonomy, appLogger).Execute(); err != nil {
		os.Exit(1)
	}
}
