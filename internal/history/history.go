// Package history implements the append-only chat transcript store.
//
// It uses SQLite in the same shape as the transcripts the service has
// always written: one row per (message, response) turn, keyed by a
// caller-chosen session id. The store never mutates or deletes turns;
// retention is an external concern.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Turn is one persisted (message, response) pair.
type Turn struct {
	ID        int64  `json:"id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// Config holds history store configuration.
type Config struct {
	DBPath string
}

// DefaultConfig returns the default configuration for the history store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DBPath: filepath.Join(home, ".peopled", "chat_history.db")}
}

// Store is the transcript store backed by SQLite.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the transcript database at cfg.DBPath,
// applies the WAL pragmas, and runs the idempotent migration.
func New(cfg Config) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("history: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("history: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS chat_sessions (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT,
			message    TEXT,
			response   TEXT,
			timestamp  DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_chat_session ON chat_sessions(session_id, timestamp);
	`)
	return err
}

// Append records one completed turn. The timestamp defaults to
// ingestion time. The created row is returned so callers can echo it.
func (s *Store) Append(sessionID, message, response string) (Turn, error) {
	res, err := s.db.Exec(
		`INSERT INTO chat_sessions (session_id, message, response) VALUES (?, ?, ?)`,
		sessionID, message, response,
	)
	if err != nil {
		return Turn{}, fmt.Errorf("history: append: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Turn{}, fmt.Errorf("history: append: %w", err)
	}

	row := s.db.QueryRow(
		`SELECT id, session_id, message, response, timestamp FROM chat_sessions WHERE id = ?`, id,
	)
	var t Turn
	if err := row.Scan(&t.ID, &t.SessionID, &t.Message, &t.Response, &t.Timestamp); err != nil {
		return Turn{}, fmt.Errorf("history: read back turn: %w", err)
	}
	return t, nil
}

// History returns all turns for a session, oldest first. Timestamps
// have second resolution, so the autoincrement id breaks ties to keep
// per-session append order. An unknown session id yields an empty
// slice, not an error.
func (s *Store) History(sessionID string) ([]Turn, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, message, response, timestamp
		 FROM chat_sessions
		 WHERE session_id = ?
		 ORDER BY timestamp, id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query session %s: %w", sessionID, err)
	}
	defer func() { _ = rows.Close() }()

	turns := []Turn{}
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Message, &t.Response, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("history: scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}
