// Package history keeps a sqlite-backed log of completed trip-planning
// runs. Only runs are persisted; sessions stay in process memory.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Store owns the run-log database. Open prepares everything the store
// needs, so a returned Store is ready to save and list runs.
type Store struct {
	conn *sql.DB
}

func Open(path string) (*Store, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL lets the gateway list runs while a save is in flight; the busy
	// timeout covers the brief writer lock that remains.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, err
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, err
	}

	return &Store{conn: conn}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

type Run struct {
	ID        int64
	UserID    string
	SessionID string
	Prompt    string
	Response  string
	CreatedAt time.Time
}

func (s *Store) SaveRun(ctx context.Context, userID, sessionID, prompt, response string) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO runs (user_id, session_id, prompt, response, created_at) VALUES (?, ?, ?, ?, ?)`,
		userID, sessionID, prompt, response, time.Now().UTC(),
	)
	return err
}

// ListRuns returns the user's most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, userID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, user_id, session_id, prompt, response, created_at
		 FROM runs WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.UserID, &r.SessionID, &r.Prompt, &r.Response, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
