// Package store persists session summaries, candidate profiles, and LLM
// request events in a local SQLite database.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the database connection.
type Store struct {
	*sqlx.DB
	path string
}

// DefaultDBPath returns the database path from the VIVA_DB env var or the
// default location under the user's home directory.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("VIVA_DB"); p != "" {
		return p, EnsureDir(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	p := filepath.Join(home, ".viva", "viva.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of the given file path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// Open opens or creates the database and runs migrations.
func Open(path string) (*Store, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{DB: db, path: path}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate() error {
	migrations := []string{
		migrationSessions,
		migrationAttempts,
		migrationProfiles,
		migrationLLMEvents,
		migrationIndexes,
	}
	for _, m := range migrations {
		if _, err := s.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

const migrationSessions = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id TEXT PRIMARY KEY,
    candidate_id TEXT NOT NULL,
    profile TEXT NOT NULL DEFAULT '',
    level TEXT NOT NULL,
    topic TEXT NOT NULL,
    final_score REAL NOT NULL,
    question_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);`

const migrationAttempts = `
CREATE TABLE IF NOT EXISTS attempts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
    question_number INTEGER NOT NULL,
    difficulty TEXT NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    score REAL NOT NULL,
    analysis TEXT NOT NULL DEFAULT ''
);`

const migrationProfiles = `
CREATE TABLE IF NOT EXISTS profiles (
    candidate_id TEXT PRIMARY KEY,
    profile TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);`

const migrationLLMEvents = `
CREATE TABLE IF NOT EXISTS llm_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    provider TEXT NOT NULL,
    model TEXT NOT NULL,
    purpose TEXT NOT NULL,
    latency_ms INTEGER NOT NULL,
    success INTEGER NOT NULL,
    input_tokens INTEGER NOT NULL DEFAULT 0,
    output_tokens INTEGER NOT NULL DEFAULT 0,
    error_message TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);`

const migrationIndexes = `
CREATE INDEX IF NOT EXISTS idx_sessions_candidate ON sessions(candidate_id, created_at);
CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id, question_number);
CREATE INDEX IF NOT EXISTS idx_llm_events_created ON llm_events(created_at);`
