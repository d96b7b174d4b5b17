package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/ledgerline/finhealth/internal/model"
)

// Pool is the subset of pgxpool.Pool the store needs. pgxmock satisfies
// it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements TrendStore using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS score_history (
	id          UUID PRIMARY KEY,
	user_id     TEXT NOT NULL,
	score       DOUBLE PRECISION NOT NULL,
	observed_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_score_history_user ON score_history(user_id, observed_at);
`

// Migrate creates the schema.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresMigration); err != nil {
		return eris.Wrap(err, "postgres: migrate")
	}
	return nil
}

// AppendScore records one observation.
func (s *PostgresStore) AppendScore(ctx context.Context, userID string, point model.TrendPoint) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO score_history (id, user_id, score, observed_at) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), userID, point.Score, point.Date.UTC(),
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: append score for %s", userID)
	}
	return nil
}

// History returns observations since the given time, oldest first.
func (s *PostgresStore) History(ctx context.Context, userID string, since time.Time) ([]model.TrendPoint, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT observed_at, score FROM score_history
		 WHERE user_id = $1 AND observed_at >= $2
		 ORDER BY observed_at ASC`,
		userID, since.UTC(),
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: history for %s", userID)
	}
	defer rows.Close()

	var points []model.TrendPoint
	for rows.Next() {
		var p model.TrendPoint
		if err := rows.Scan(&p.Date, &p.Score); err != nil {
			return nil, eris.Wrap(err, "postgres: scan history row")
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate history")
	}
	return points, nil
}

// Close releases the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
