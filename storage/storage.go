// Package storage persists user preference records in a SQLite database and
// implements the preference store's backend interface.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	easel "github.com/gvsucis/f25-spherical-easel"
	"github.com/gvsucis/f25-spherical-easel/optional"
	"github.com/gvsucis/f25-spherical-easel/prefs"
)

// ErrNotFound is returned when a user has no stored preferences.
var ErrNotFound = errors.New("not found")

var schema = `
	CREATE TABLE IF NOT EXISTS user_preferences (
		user_id text PRIMARY KEY NOT NULL,
		default_fill text,
		updated_at datetime NOT NULL
	);
`
var pragmas = `
	PRAGMA journal_mode = WAL;
	PRAGMA synchronous = normal;
	PRAGMA temp_store = memory;
`

// InitDB opens the database and applies the schema (needs to be called once).
func InitDB(dataSourceName string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("%s?_fk=on", dataSourceName)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", dataSourceName, err)
	}
	slog.Info("Connected to database", "dsn", dataSourceName)
	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if _, err = db.Exec(pragmas); err != nil {
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	return db, nil
}

// Storage reads and writes user preference records.
type Storage struct {
	db *sqlx.DB
}

// New returns a storage using the given database.
func New(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

type userPreferences struct {
	UserID      string         `db:"user_id"`
	DefaultFill sql.NullString `db:"default_fill"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// GetPreferences returns the stored record of a user, or ErrNotFound.
func (st *Storage) GetPreferences(ctx context.Context, uid string) (*prefs.Record, error) {
	var row userPreferences
	err := st.db.GetContext(ctx, &row, "SELECT * FROM user_preferences WHERE user_id = ?;", uid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get preferences for user %s: %w", uid, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("get preferences for user %s: %w", uid, err)
	}
	rec := &prefs.Record{}
	if row.DefaultFill.Valid {
		fill, err := easel.ParseFillStyle(row.DefaultFill.String)
		if err != nil {
			return nil, fmt.Errorf("get preferences for user %s: %w", uid, err)
		}
		rec.DefaultFill = optional.New(fill)
	}
	return rec, nil
}

// UpdateOrCreatePreferences stores the record of a user, replacing any
// earlier one. An empty default fill is stored as NULL.
func (st *Storage) UpdateOrCreatePreferences(ctx context.Context, uid string, rec prefs.Record) error {
	row := userPreferences{
		UserID:    uid,
		UpdatedAt: time.Now().UTC(),
	}
	if fill, err := rec.DefaultFill.Value(); err == nil {
		row.DefaultFill = sql.NullString{String: fill.String(), Valid: true}
	}
	_, err := st.db.NamedExecContext(ctx, `
		INSERT INTO user_preferences (user_id, default_fill, updated_at)
		VALUES (:user_id, :default_fill, :updated_at)
		ON CONFLICT (user_id) DO
		UPDATE SET default_fill = :default_fill, updated_at = :updated_at;`,
		row,
	)
	if err != nil {
		return fmt.Errorf("update or create preferences for user %s: %w", uid, err)
	}
	return nil
}

// DeletePreferences removes the stored record of a user. Deleting a user
// without a record does nothing.
func (st *Storage) DeletePreferences(ctx context.Context, uid string) error {
	if _, err := st.db.ExecContext(ctx, "DELETE FROM user_preferences WHERE user_id = ?;", uid); err != nil {
		return fmt.Errorf("delete preferences for user %s: %w", uid, err)
	}
	return nil
}

// LoadPreferences implements prefs.Backend. A user without stored
// preferences yields a nil record.
func (st *Storage) LoadPreferences(ctx context.Context, uid string) (*prefs.Record, error) {
	rec, err := st.GetPreferences(ctx, uid)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return rec, nil
}

// SavePreferences implements prefs.Backend.
func (st *Storage) SavePreferences(ctx context.Context, uid string, rec prefs.Record) error {
	return st.UpdateOrCreatePreferences(ctx, uid, rec)
}

var _ prefs.Backend = (*Storage)(nil)
