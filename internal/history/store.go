// Package history implements haybale's query-history store: a small,
// locked SQLite database recording recent `haybale search` invocations for
// the `haybale history` subcommand. It is CLI-only infrastructure — the
// core search packages never import it.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/haybale/internal/filelock"
)

// HistoryEntry is one row of the query-history store.
type HistoryEntry struct {
	ID             int64
	RunID          string
	Root           string
	NamePattern    string
	ContentPattern string
	ResultCount    int
	WarningCount   int
	Duration       time.Duration
	RanAt          time.Time
}

const schemaSQL = `CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	root TEXT NOT NULL,
	name_pattern TEXT NOT NULL DEFAULT '',
	content_pattern TEXT NOT NULL DEFAULT '',
	result_count INTEGER NOT NULL,
	warning_count INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	ran_at TIMESTAMP NOT NULL
);`

// Store wraps a SQLite-backed query-history database, guarding schema
// creation and writes with a sibling .lock file so two concurrent haybale
// processes never interleave.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if necessary) the history database at path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	lock := filelock.NewFileLock(path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	defer lock.Unlock()

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts entry as a new row, assigning a RunID if entry.RunID is
// unset.
func (s *Store) Record(entry HistoryEntry) error {
	if entry.RunID == "" {
		entry.RunID = uuid.NewString()
	}
	if entry.RanAt.IsZero() {
		entry.RanAt = time.Now()
	}

	lock := filelock.NewFileLock(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire history lock: %w", err)
	}
	defer lock.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO history (run_id, root, name_pattern, content_pattern, result_count, warning_count, duration_ms, ran_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID, entry.Root, entry.NamePattern, entry.ContentPattern,
		entry.ResultCount, entry.WarningCount, entry.Duration.Milliseconds(), entry.RanAt,
	)
	if err != nil {
		return fmt.Errorf("record history entry: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first, capped at limit.
func (s *Store) Recent(limit int) ([]HistoryEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, root, name_pattern, content_pattern, result_count, warning_count, duration_ms, ran_at
		 FROM history ORDER BY ran_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var durationMs int64
		if err := rows.Scan(&e.ID, &e.RunID, &e.Root, &e.NamePattern, &e.ContentPattern,
			&e.ResultCount, &e.WarningCount, &durationMs, &e.RanAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear truncates the history table.
func (s *Store) Clear() error {
	lock := filelock.NewFileLock(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire history lock: %w", err)
	}
	defer lock.Unlock()

	if _, err := s.db.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
