package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GillzV/jobassist/internal/config"
	"github.com/GillzV/jobassist/internal/store"
)

const defaultDataDir = "data"

// loadConfig reads the optional config file and merges flag values over it.
// Flags win; the config file fills gaps; built-in defaults fill the rest.
func loadConfig(configPath, dataDir, databaseURL string) (config.Config, error) {
	flags := config.Config{DataDir: dataDir, DatabaseURL: databaseURL}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
	}

	if flags.DatabaseURL == "" {
		flags.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if flags.DataDir == "" {
		flags.DataDir = defaultDataDir
	}
	return flags, nil
}

// openStore opens the configured backend: PostgreSQL when a database URL is
// set, the JSON file store otherwise. The returned close function is always
// safe to call.
func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database store: %w", err)
		}
		return pg, pg.Close, nil
	}

	fs, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file store: %w", err)
	}
	return fs, func() {}, nil
}

// openFileStore opens the JSON file store regardless of database settings,
// for operations that only exist on files (backup, export).
func openFileStore(cfg config.Config) (*store.FileStore, error) {
	fs, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open file store: %w", err)
	}
	return fs, nil
}
