package sqlite_storage

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telecloud_bot/internal/pkg/user/migrations"
)

func newTestStorage(t *testing.T) *SqliteStorage {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Миграции пишут в одну и ту же базу, пул не нужен.
	db.SetMaxOpenConns(1)

	require.NoError(t, migrations.Up(db, "sqlite3"))
	return NewSqliteStorage(db)
}

func TestGetUserUnknown(t *testing.T) {
	storage := newTestStorage(t)

	u, err := storage.GetUser(42)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestEnsureUser(t *testing.T) {
	storage := newTestStorage(t)

	u, err := storage.EnsureUser(42)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(42), u.TelegramID)
	assert.False(t, u.HasToken())

	// Повторный вызов не трогает существующую запись.
	require.NoError(t, storage.SaveToken(42, "tok-1"))
	u, err = storage.EnsureUser(42)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", u.UserToken)
}

func TestSaveToken(t *testing.T) {
	storage := newTestStorage(t)

	require.NoError(t, storage.SaveToken(42, "tok-1"))
	require.NoError(t, storage.SaveToken(42, "tok-2"))

	u, err := storage.GetUser(42)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "tok-2", u.UserToken)
	assert.True(t, u.HasToken())
}
