package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store is the local SQLite question cache. It holds the last successfully
// fetched question set so the app works offline; it never stores sessions.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended pragmas,
// and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS questions (
	seq             INTEGER PRIMARY KEY AUTOINCREMENT,
	qid             TEXT NOT NULL DEFAULT '',
	topic           TEXT NOT NULL,
	question        TEXT NOT NULL,
	options         TEXT NOT NULL,
	correct_index   INTEGER NOT NULL DEFAULT 0,
	correct_indices TEXT NOT NULL DEFAULT '',
	tags            TEXT NOT NULL DEFAULT '',
	difficulty      TEXT NOT NULL DEFAULT '',
	source_type     TEXT NOT NULL DEFAULT '',
	explanation     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_questions_topic ON questions (topic);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	_, err := db.Exec(schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PREPDECK_DB environment variable
// 2. $XDG_DATA_HOME/prepdeck/prepdeck.db
// 3. ~/.local/share/prepdeck/prepdeck.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PREPDECK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "prepdeck", "prepdeck.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
