// AngelaMos | 2026
// open.go

package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/carterperez-dev/sage-nfm/internal/config"
	"github.com/carterperez-dev/sage-nfm/internal/core"
)

var ErrDurableUnavailable = errors.New("durable store unavailable")

// Open picks the storage mode. A configured database that connects and
// migrates yields durable mode; anything else yields fallback mode unless
// database.require_durable is set. The choice is final for the process.
func Open(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (Manager, error) {
	if cfg.Database.URL == "" {
		if cfg.Database.RequireDurable {
			return nil, fmt.Errorf("open store: no database url: %w", ErrDurableUnavailable)
		}
		logger.Warn("no database configured, using in-memory store")
		return openFallback(cfg, logger)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return fallbackOrFail(cfg, logger, err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close() //nolint:errcheck // best-effort cleanup before fallback
		return fallbackOrFail(cfg, logger, err)
	}

	logger.Info("connected to database",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"query_timeout", cfg.Database.QueryTimeout,
	)

	return NewPostgresManager(db, cfg.Database.QueryTimeout), nil
}

func fallbackOrFail(
	cfg *config.Config,
	logger *slog.Logger,
	cause error,
) (Manager, error) {
	if cfg.Database.RequireDurable {
		return nil, fmt.Errorf("open store: %w: %w", ErrDurableUnavailable, cause)
	}

	logger.Warn("database unavailable, using in-memory store", "error", cause)
	return openFallback(cfg, logger)
}

func openFallback(cfg *config.Config, logger *slog.Logger) (Manager, error) {
	if !cfg.SeedsDemoData() {
		return NewMemoryManager(Seed{}), nil
	}

	seed, err := DemoSeed()
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	logger.Info("loaded demo data", "email", DemoEmail)
	return NewMemoryManager(seed), nil
}
