// Package store persists the per-user (date, score) trend history the
// engine consumes for trend classification. The engine itself never
// touches this package; the CLI and server feed scores in after each
// run and hand the history back on the next one.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/ledgerline/finhealth/internal/config"
	"github.com/ledgerline/finhealth/internal/model"
)

// TrendStore is the persistence interface for score history.
type TrendStore interface {
	// AppendScore records one (date, score) observation for a user.
	AppendScore(ctx context.Context, userID string, point model.TrendPoint) error

	// History returns a user's observations since the given time,
	// ordered by date ascending.
	History(ctx context.Context, userID string, since time.Time) ([]model.TrendPoint, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a TrendStore for the configured driver.
func Open(ctx context.Context, cfg config.StoreConfig) (TrendStore, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return NewSQLite(cfg.SQLitePath)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
