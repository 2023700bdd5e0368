package preference

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcard/internal/config"
	"github.com/at-ishikawa/wordcard/internal/database"
)

const (
	selectPreference  = "SELECT value FROM preferences WHERE name = ?"
	replacePreference = "REPLACE INTO preferences (name,value) VALUES (?,?)"
	deletePreference  = "DELETE FROM preferences WHERE name = ?"
)

func newMockStore(t *testing.T) (*DBStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewDBStore(sqlx.NewDb(db, "mysql")), mock
}

func TestDBStore_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      string
		wantOK    bool
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectPreference)).
					WithArgs(ThemeKey).
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("dark"))
			},
			want:   "dark",
			wantOK: true,
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectPreference)).
					WithArgs(ThemeKey).
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectPreference)).
					WithArgs(ThemeKey).
					WillReturnError(errors.New("connection lost"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			tt.setupMock(mock)

			got, ok, err := store.Get(context.Background(), ThemeKey)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.wantOK, ok)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_SetAndDelete(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS preferences").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(replacePreference)).
		WithArgs(ThemeKey, "dark").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deletePreference)).
		WithArgs(ThemeKey).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deletePreference)).
		WithArgs(ThemeKey).
		WillReturnError(errors.New("read only"))

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Set(ctx, ThemeKey, "dark"))
	require.NoError(t, store.Delete(ctx, ThemeKey))
	assert.Error(t, store.Delete(ctx, ThemeKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_SQLite(t *testing.T) {
	db, err := database.Open(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "wordcard.db"),
	})
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	store := NewDBStore(db)
	require.NoError(t, store.Migrate(ctx))

	_, ok, err := store.Get(ctx, ThemeKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, ThemeKey, "light"))
	require.NoError(t, store.Set(ctx, ThemeKey, "dark"))
	value, ok, err := store.Get(ctx, ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	require.NoError(t, store.Delete(ctx, ThemeKey))
	_, ok, err = store.Get(ctx, ThemeKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
