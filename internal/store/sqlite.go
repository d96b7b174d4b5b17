package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/ledgerline/finhealth/internal/model"
)

// SQLiteStore implements TrendStore using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures
// WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS score_history (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	score       REAL NOT NULL,
	observed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_score_history_user ON score_history(user_id, observed_at);
`

// Migrate creates the schema.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteMigration); err != nil {
		return eris.Wrap(err, "sqlite: migrate")
	}
	return nil
}

// AppendScore records one observation.
func (s *SQLiteStore) AppendScore(ctx context.Context, userID string, point model.TrendPoint) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO score_history (id, user_id, score, observed_at) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), userID, point.Score, point.Date.UTC(),
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: append score for %s", userID)
	}
	return nil
}

// History returns observations since the given time, oldest first.
func (s *SQLiteStore) History(ctx context.Context, userID string, since time.Time) ([]model.TrendPoint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT observed_at, score FROM score_history
		 WHERE user_id = ? AND observed_at >= ?
		 ORDER BY observed_at ASC`,
		userID, since.UTC(),
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: history for %s", userID)
	}
	defer rows.Close()

	var points []model.TrendPoint
	for rows.Next() {
		var p model.TrendPoint
		if err := rows.Scan(&p.Date, &p.Score); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan history row")
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate history")
	}
	return points, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
