// Package storage keeps finished runs in a SQLite database using the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultPath is where the game and the scores command look for the database.
const DefaultPath = "~/.catburglar/runs.db"

type Store struct {
	db *sql.DB
}

// Run is one finished attempt.
type Run struct {
	ID       int64
	Duration time.Duration
	Escaped  bool
	Seed     int64
	Enemies  int
	PlayedAt time.Time
}

// Open creates or opens the database at path, creating parent directories and the schema
// as needed. A leading ~ expands to the home directory; ":memory:" opens a private
// in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if path != "" && path[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			path = filepath.Join(home, path[1:])
		}
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			duration_ms INTEGER NOT NULL,
			escaped INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			enemies INTEGER NOT NULL DEFAULT 0,
			played_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(escaped DESC, duration_ms DESC);
	`)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records r and returns its id. A zero PlayedAt is stamped with the current time.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now()
	}
	res, err := s.db.Exec(
		"INSERT INTO runs (duration_ms, escaped, seed, enemies, played_at) VALUES (?, ?, ?, ?, ?)",
		r.Duration.Milliseconds(), r.Escaped, r.Seed, r.Enemies, r.PlayedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = "id, duration_ms, escaped, seed, enemies, played_at"

// TopRuns returns the best runs: escapes first, then longest survival.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		"SELECT "+runColumns+" FROM runs ORDER BY escaped DESC, duration_ms DESC, id ASC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestRun returns the top run, or ok=false when nothing is recorded.
func (s *Store) BestRun() (Run, bool, error) {
	row := s.db.QueryRow("SELECT " + runColumns + " FROM runs ORDER BY escaped DESC, duration_ms DESC, id ASC LIMIT 1")
	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return r, true, nil
}

// ClearRuns deletes every run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var durationMS, playedAt int64
	if err := sc.Scan(&r.ID, &durationMS, &r.Escaped, &r.Seed, &r.Enemies, &playedAt); err != nil {
		if err == sql.ErrNoRows {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.PlayedAt = time.UnixMilli(playedAt)
	return r, nil
}
