package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Stashkeeper_Go/internal/config"
	"github.com/osse101/Stashkeeper_Go/internal/database"
	"github.com/osse101/Stashkeeper_Go/internal/database/postgres"
	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/fixtures"
	"github.com/osse101/Stashkeeper_Go/internal/media"
	"github.com/osse101/Stashkeeper_Go/internal/normalize"
	"github.com/osse101/Stashkeeper_Go/internal/repository"
)

// StoreComponents is what backs the state service. Pool and Store are nil in offline mode.
type StoreComponents struct {
	Pool    *pgxpool.Pool
	Store   repository.Store
	Media   media.Store
	Initial domain.State
}

// InitializeStore prepares the backing store for the configured mode.
// Offline mode starts from the seed fixtures and keeps images inline.
// Connected mode migrates the schema and seeds it when empty. Its state is
// loaded afterwards by the service's startup reload.
func InitializeStore(ctx context.Context, cfg *config.Config) (*StoreComponents, error) {
	if !cfg.IsConnected() {
		initial, err := fixtures.Load(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadFixtures, err)
		}
		slog.Info(LogMsgOfflineMode, "inventories", len(initial.Inventories))
		return &StoreComponents{
			Media:   media.NewInlineStore(cfg.MaxImageBytes),
			Initial: initial,
		}, nil
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	store := postgres.NewStashStore(pool)
	if _, err := SeedIfEmpty(ctx, store, cfg.SeedFile); err != nil {
		pool.Close()
		return nil, err
	}

	slog.Info(LogMsgConnectedMode, "db_host", cfg.DBHost, "db_name", cfg.DBName)
	return &StoreComponents{
		Pool:  pool,
		Store: store,
		Media: media.NewLocalStore(cfg.MediaDir, cfg.MediaBaseURL, cfg.MaxImageBytes),
	}, nil
}

// SeedIfEmpty writes the fixtures into a store that holds no rows.
// It reports whether it seeded.
func SeedIfEmpty(ctx context.Context, store repository.Store, seedFile string) (bool, error) {
	rows, err := store.LoadAll(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedCheckStore, err)
	}
	if !rows.IsEmpty() {
		return false, nil
	}

	slog.Info(LogMsgSeedingEmptyStore, "seed_file", seedFile)
	state, err := fixtures.Load(seedFile)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedLoadFixtures, err)
	}
	seed := normalize.Flatten(state)
	if err := store.Seed(ctx, seed); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedSeedStore, err)
	}
	slog.Info(LogMsgStoreSeeded,
		"inventories", len(seed.Inventories),
		"categories", len(seed.Categories),
		"items", len(seed.Items))
	return true, nil
}
