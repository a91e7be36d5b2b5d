package repository

import (
	"context"
	"fmt"

	"finsort/pkg/config"
	"finsort/pkg/postgres"
	"finsort/pkg/sqlite"

	"go.uber.org/zap"
)

// NewFileStore opens the backend selected by cfg.Store.Backend. The caller
// owns the returned store and must Close it.
func NewFileStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (FileStore, error) {
	switch cfg.Store.Backend {
	case config.StoreJSON, "":
		logger.Info("Using JSON file store", zap.String("path", cfg.Store.JSONFile))
		return NewJSONFileStore(cfg.Store.JSONFile, logger), nil

	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.Store.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return NewSQLiteFileStore(db, logger), nil

	case config.StorePostgres:
		if err := postgres.Migrate(&cfg.Database, logger); err != nil {
			return nil, fmt.Errorf("failed to migrate postgres store: %w", err)
		}
		pool, err := postgres.NewPool(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		return NewPostgresFileStore(pool, logger), nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.Store.Backend)
	}
}
