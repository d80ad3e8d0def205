package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"people-counting-service/internal/events/core/domain"
	"people-counting-service/internal/storage"
)

// newMockDB creates a sqlmock database with automatic cleanup and expectation checking.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func newSQLiteRepo(t *testing.T) *EventRepository {
	t.Helper()
	db, err := storage.Open(context.Background(), storage.Config{Driver: storage.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEventRepository(NewSQLDB(db))
}

var countColumns = []string{"id", "timestamp", "direction", "count", "raw_payload"}

func TestEventRepository_InsertEvent_ReturnsID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO counts .+ RETURNING id`).
		WithArgs("2025-01-15 10:30:00", "in", int64(3), `{"x":1}`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := NewEventRepository(NewSQLDB(db))

	id, err := repo.InsertEvent(context.Background(), &domain.CountEvent{
		Timestamp:  "2025-01-15 10:30:00",
		Direction:  domain.DirectionIn,
		Count:      3,
		RawPayload: `{"x":1}`,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestEventRepository_InsertEvent_Error(t *testing.T) {
	db, mock := newMockDB(t)

	dbErr := errors.New("database is locked")
	mock.ExpectQuery(`INSERT INTO counts`).WillReturnError(dbErr)

	repo := NewEventRepository(NewSQLDB(db))

	id, err := repo.InsertEvent(context.Background(), &domain.CountEvent{Direction: domain.DirectionOut})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Zero(t, id)
}

func TestEventRepository_ListRecent_ScansNullColumns(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, "timestamp", direction, "count", raw_payload FROM counts`).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows(countColumns).
			AddRow(int64(2), "2025-01-15 10:31:00", "out", int64(1), `{}`).
			AddRow(int64(1), "2025-01-15 10:30:00", nil, nil, nil))

	repo := NewEventRepository(NewSQLDB(db))

	events, err := repo.ListRecent(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.DirectionOut, events[0].Direction)
	assert.Equal(t, domain.Direction(""), events[1].Direction)
	assert.Zero(t, events[1].Count)
}

func TestEventRepository_ListRecent_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT .+ FROM counts`).WillReturnError(errors.New("no such table: counts"))

	repo := NewEventRepository(NewSQLDB(db))

	_, err := repo.ListRecent(context.Background(), 100)
	require.Error(t, err)
}

func TestEventRepository_ListRecent_RowError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT .+ FROM counts`).
		WillReturnRows(sqlmock.NewRows(countColumns).
			AddRow(int64(1), "2025-01-15 10:30:00", "in", int64(1), `{}`).
			RowError(0, errors.New("corrupt page")))

	repo := NewEventRepository(NewSQLDB(db))

	_, err := repo.ListRecent(context.Background(), 100)
	require.Error(t, err)
}

// ------------------------------------------------------------
// SQLITE
// ------------------------------------------------------------

func TestEventRepository_SQLite_IDsIncreaseInInsertOrder(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := repo.InsertEvent(ctx, &domain.CountEvent{
			Timestamp:  "2025-01-15 10:30:00",
			Direction:  domain.DirectionIn,
			Count:      int64(i),
			RawPayload: "{}",
		})
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
}

func TestEventRepository_SQLite_ListRecentNewestFirstAndLimited(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	stamps := []string{
		"2025-01-15 10:30:00",
		"2025-01-15 12:00:00",
		"2025-01-15 09:00:00",
		"2025-01-15 12:00:00",
	}
	for _, ts := range stamps {
		_, err := repo.InsertEvent(ctx, &domain.CountEvent{Timestamp: ts, Direction: domain.DirectionIn, Count: 1, RawPayload: "{}"})
		require.NoError(t, err)
	}

	events, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// same timestamp: later insert first
	assert.Equal(t, int64(4), events[0].ID)
	assert.Equal(t, int64(2), events[1].ID)
	assert.Equal(t, "2025-01-15 10:30:00", events[2].Timestamp)
}

func TestEventRepository_SQLite_ListRecentIsIdempotent(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	for _, dir := range []domain.Direction{domain.DirectionIn, domain.DirectionOut, domain.DirectionIn} {
		_, err := repo.InsertEvent(ctx, &domain.CountEvent{Timestamp: "2025-01-15 10:30:00", Direction: dir, Count: 2, RawPayload: "{}"})
		require.NoError(t, err)
	}

	first, err := repo.ListRecent(ctx, 100)
	require.NoError(t, err)
	second, err := repo.ListRecent(ctx, 100)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
