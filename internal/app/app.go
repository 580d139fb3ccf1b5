package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/logging"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/store"
	"go.uber.org/zap"
)

type App struct {
	Service *service.Service
	Store   store.Ledger
	Logger  *zap.Logger
}

// NewApp initialize logger, database and the transfer engine, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	dbPath, err := ResolveDBPath(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Debug("database ready", zap.String("path", dbPath))

	// The one gate of the process; every balance writer must share it.
	gate := service.NewGate()
	svc := service.NewService(dbStore, gate, cfg, logger)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logger.Error("error closing database", zap.Error(err))
		}
		_ = logger.Sync()
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  logger,
	}, cleanup, nil
}

// ResolveDBPath expands a leading "~" and falls back to the app data directory.
func ResolveDBPath(raw string) (string, error) {
	if raw == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, "ledger.db"), nil
	}
	return ExpandPath(raw)
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".ledger"), nil
	}

	return filepath.Join(configDir, "ledger"), nil
}

func ExpandPath(path string) (string, error) {
	if path == "~" || len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
