package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trackspense/internal/config"
	"github.com/MKhiriev/go-trackspense/internal/logger"
)

func newTestSQLiteStore(t *testing.T) (*sqliteKeyValueStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &sqliteKeyValueStore{
		db:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	}, mock
}

// ── sqlmock ───────────────────────────────────────────────────────────────────

func TestSQLiteKeyValueStore_Get_Success(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM session_kv WHERE key = ?")).
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))

	got, err := s.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValueStore_Get_NoRows(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectQuery("SELECT value FROM session_kv").
		WithArgs("token").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteKeyValueStore_Get_DBError(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectQuery("SELECT value FROM session_kv").
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(context.Background(), "token")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteKeyValueStore_Set_Upsert(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec("INSERT INTO session_kv").
		WithArgs("token", "abc", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "token", "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValueStore_Set_DBError(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec("INSERT INTO session_kv").
		WithArgs("token", "abc", sqlmock.AnyArg()).
		WillReturnError(errors.New("database is locked"))

	err := s.Set(context.Background(), "token", "abc")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteKeyValueStore_Remove(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session_kv WHERE key = ?")).
		WithArgs("user").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Remove(context.Background(), "user"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValueStore_Remove_DBError(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec("DELETE FROM session_kv").
		WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, s.Remove(context.Background(), "user"), ErrExecutingStatement)
}

// ── real sqlite ───────────────────────────────────────────────────────────────

func TestSQLiteKeyValueStore_RealDatabase(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "session.db")

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	s := NewSQLiteKeyValueStore(db, logger.Nop())

	_, err = s.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "token", "abc"))
	require.NoError(t, s.Set(ctx, "token", "xyz"))

	got, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "xyz", got)

	require.NoError(t, s.Remove(ctx, "token"))
	require.NoError(t, s.Remove(ctx, "token"))
	_, err = s.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteKeyValueStore_PersistsAcrossConnections(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	first, err := NewStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, "", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Session.Set(ctx, "token", "persisted"))
	require.NoError(t, first.Close())

	second, err := NewStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, "", logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Session.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestNewStorages_InMemory(t *testing.T) {
	ctx := context.Background()

	s, err := NewStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: MemoryDSN}}, "", logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Session.Set(ctx, "user", `{"email":"a@b.com","isAuthenticated":true}`))
	got, err := s.Session.Get(ctx, "user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.com","isAuthenticated":true}`, got)
}
