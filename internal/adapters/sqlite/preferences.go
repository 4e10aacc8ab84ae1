package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rapport/internal/domain"
	"rapport/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

const keyTheme = "theme"

// Preferences implements ports.PreferenceStore using SQLite
type Preferences struct {
	db     *sql.DB
	dbPath string
}

// Ensure Preferences implements PreferenceStore
var _ ports.PreferenceStore = (*Preferences)(nil)

// OpenPreferences opens (creating if needed) the preferences database at dbPath
func OpenPreferences(dbPath string) (*Preferences, error) {
	// Expand ~ in path
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Preferences{db: db, dbPath: dbPath}, nil
}

// Path returns the database file path
func (p *Preferences) Path() string {
	return p.dbPath
}

// Close closes the database connection
func (p *Preferences) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// Get returns the stored value for key, or false when it was never set
func (p *Preferences) Get(key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key
func (p *Preferences) Set(key, value string) error {
	_, err := p.db.Exec(`INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Theme returns the persisted theme. Unset, unreadable or unknown values fall back to the default.
func (p *Preferences) Theme() domain.Theme {
	value, ok, err := p.Get(keyTheme)
	if err != nil || !ok {
		return domain.DefaultTheme
	}
	return domain.ThemeOrDefault(value)
}

// SetTheme persists the theme choice
func (p *Preferences) SetTheme(theme domain.Theme) error {
	if err := p.Set(keyTheme, theme.String()); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
