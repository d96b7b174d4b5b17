package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/finhealth/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS score_history`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AppendScore(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	observed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO score_history`).
		WithArgs(pgxmock.AnyArg(), "user-1", 72.0, observed).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := s.AppendScore(context.Background(), "user-1", model.TrendPoint{Date: observed, Score: 72})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AppendScore_Error(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO score_history`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrTxClosed)

	err := s.AppendScore(context.Background(), "user-1", model.TrendPoint{Date: time.Now(), Score: 50})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append score")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_History(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	first := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT observed_at, score FROM score_history`).
		WithArgs("user-1", since).
		WillReturnRows(pgxmock.NewRows([]string{"observed_at", "score"}).
			AddRow(first, 58.5).
			AddRow(second, 63.0))

	points, err := s.History(context.Background(), "user-1", since)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, model.TrendPoint{Date: first, Score: 58.5}, points[0])
	assert.Equal(t, model.TrendPoint{Date: second, Score: 63.0}, points[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_History_Empty(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT observed_at, score FROM score_history`).
		WithArgs("user-2", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"observed_at", "score"}))

	points, err := s.History(context.Background(), "user-2", time.Now())
	require.NoError(t, err)
	assert.Empty(t, points)
	assert.NoError(t, mock.ExpectationsWereMet())
}
