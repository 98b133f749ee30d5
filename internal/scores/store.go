// Package scores persists finished runs in a local SQLite database.
package scores

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Outcome of a run.
const (
	OutcomeEscaped = "escaped"
	OutcomeCaught  = "caught"
)

// Run is one finished game, from start to game over.
type Run struct {
	ID        string
	StartedAt time.Time
	Duration  time.Duration
	Outcome   string
	Level     int
	Steps     int
}

// Store manages the scores database.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// Open creates or opens the scores store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, dbPath: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		level_reached INTEGER NOT NULL,
		steps INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_runs_outcome ON runs(outcome);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record inserts a finished run. An empty ID gets a fresh UUID.
func (s *Store) Record(run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Outcome != OutcomeEscaped && run.Outcome != OutcomeCaught {
		return fmt.Errorf("invalid outcome %q", run.Outcome)
	}

	_, err := s.db.Exec(`
		INSERT INTO runs (id, started_at, duration_ms, outcome, level_reached, steps)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC(), run.Duration.Milliseconds(),
		run.Outcome, run.Level, run.Steps,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, started_at, duration_ms, outcome, level_reached, steps
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			durationMs int64
		)
		if err := rows.Scan(&run.ID, &run.StartedAt, &durationMs,
			&run.Outcome, &run.Level, &run.Steps); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// BestEscape returns the fastest escaped run, or ok=false when nobody has
// made it yet.
func (s *Store) BestEscape() (Run, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`
		SELECT id, started_at, duration_ms, outcome, level_reached, steps
		FROM runs
		WHERE outcome = ?
		ORDER BY duration_ms ASC
		LIMIT 1`, OutcomeEscaped)

	var (
		run        Run
		durationMs int64
	)
	err := row.Scan(&run.ID, &run.StartedAt, &durationMs,
		&run.Outcome, &run.Level, &run.Steps)
	if err == sql.ErrNoRows {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, fmt.Errorf("failed to query best run: %w", err)
	}
	run.Duration = time.Duration(durationMs) * time.Millisecond
	return run, true, nil
}
