package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"ideaindex/internal/adapters/clock"
	"ideaindex/internal/adapters/filesystem"
	"ideaindex/internal/adapters/memory"
	"ideaindex/internal/adapters/postgres"
	"ideaindex/internal/adapters/sqlite"
	"ideaindex/internal/application"
	"ideaindex/internal/config"
	"ideaindex/internal/ports"
)

// Store is an opened backend. Files is set only for the file backend, whose
// documents can be edited and watched directly.
type Store struct {
	ports.KVStore
	Backend  string
	Location string
	Files    *filesystem.Store
}

// Locator returns the document locator of the backend, or nil when its
// entries do not live in user-editable files
func (s *Store) Locator() ports.DocumentLocator {
	if s.Files == nil {
		return nil
	}
	return s.Files
}

// OpenStore opens the backend selected by cfg
func OpenStore(ctx context.Context, cfg config.Config) (*Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return &Store{KVStore: memory.NewStore(), Backend: cfg.Backend, Location: "memory"}, nil

	case config.BackendFile:
		fs, err := filesystem.NewStore(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return &Store{KVStore: fs, Backend: cfg.Backend, Location: fs.Dir(), Files: fs}, nil

	case config.BackendSQLite:
		db, err := sqlite.OpenDir(ctx, cfg.SQLiteDriver, filesystem.ExpandHome(cfg.DataDir))
		if err != nil {
			return nil, err
		}
		return &Store{KVStore: db, Backend: cfg.Backend, Location: db.Path()}, nil

	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.PostgresDSN, postgres.DefaultTable)
		if err != nil {
			return nil, err
		}
		return &Store{KVStore: db, Backend: cfg.Backend, Location: postgres.DefaultTable}, nil

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// OpenCatalog opens the configured store and returns an initialized catalog
// on top of it. The caller closes the returned store.
func OpenCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger) (*application.Catalog, *Store, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
	}

	catalog := application.NewCatalog(store, clock.NewScheduler(), application.Options{
		IndexDelay:             cfg.IndexDelay,
		CancelPendingOnRebuild: cfg.CancelOnRebuild,
		Logger:                 logger,
	})
	if err := catalog.Init(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}

	logger.Debug("opened store", "backend", store.Backend, "location", store.Location)
	return catalog, store, nil
}
