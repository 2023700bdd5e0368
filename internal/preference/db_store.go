package preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const preferencesTable = "preferences"

// The statements are valid for both MySQL and SQLite.
const createPreferencesTable = `CREATE TABLE IF NOT EXISTS preferences (
	name VARCHAR(64) NOT NULL PRIMARY KEY,
	value VARCHAR(255) NOT NULL
)`

// DBStore keeps preferences in the preferences table.
type DBStore struct {
	db *sqlx.DB
}

func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// Migrate creates the preferences table if it does not exist.
func (s *DBStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createPreferencesTable); err != nil {
		return fmt.Errorf("db.ExecContext(create preferences) > %w", err)
	}
	return nil
}

func (s *DBStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := squirrel.Select("value").
		From(preferencesTable).
		Where(squirrel.Eq{"name": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("select.ToSql > %w", err)
	}

	var value string
	err = s.db.GetContext(ctx, &value, s.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("db.GetContext(preference) > %w", err)
	}
	return value, true, nil
}

// Set inserts or overwrites the value of key.
func (s *DBStore) Set(ctx context.Context, key, value string) error {
	return s.exec(ctx, squirrel.Replace(preferencesTable).
		Columns("name", "value").
		Values(key, value))
}

func (s *DBStore) Delete(ctx context.Context, key string) error {
	return s.exec(ctx, squirrel.Delete(preferencesTable).
		Where(squirrel.Eq{"name": key}))
}

func (s *DBStore) exec(ctx context.Context, statement squirrel.Sqlizer) error {
	query, args, err := statement.ToSql()
	if err != nil {
		return fmt.Errorf("statement.ToSql > %w", err)
	}
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("db.ExecContext(%s) > %w", query, err)
	}
	return nil
}
