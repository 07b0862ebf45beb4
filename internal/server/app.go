// Package server wires configuration, logging and storage into a users.Store.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/tokenkeeper/internal/config"
	"github.com/iudanet/tokenkeeper/internal/server/storage"
	"github.com/iudanet/tokenkeeper/internal/server/storage/boltdb"
	"github.com/iudanet/tokenkeeper/internal/server/storage/sqlite"
	"github.com/iudanet/tokenkeeper/internal/server/users"
)

// App owns the storage handle and the store built on top of it.
type App struct {
	storage storage.UserStorage
	Users   *users.Store
}

// OpenStorage opens the user collection for the given driver
func OpenStorage(ctx context.Context, driver, path string) (storage.UserStorage, error) {
	var (
		s   storage.UserStorage
		err error
	)

	switch driver {
	case storage.DriverBolt:
		s, err = boltdb.New(ctx, path)
	case storage.DriverSQLite:
		s, err = sqlite.New(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// NewApp opens storage according to cfg and builds the store
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	userStorage, err := OpenStorage(ctx, cfg.DBDriver, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	logger.DebugContext(ctx, "storage opened",
		slog.String("driver", cfg.DBDriver),
		slog.String("path", cfg.DBPath))

	store := users.New(userStorage,
		users.WithBcryptCost(cfg.BcryptCost),
		users.WithLogger(logger),
	)

	return &App{storage: userStorage, Users: store}, nil
}

// Close closes the storage
func (a *App) Close() error {
	if err := a.storage.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
