package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteJournal is a SQLite implementation of Journal.
//
// It stores run records in a single-file database. Designed for:
//   - Local benchmark campaigns that should survive the process
//   - Zero-setup persistence during development
//
// WAL mode is enabled so concurrent benchmark goroutines can read while
// one writer inserts.
type SQLiteJournal struct {
	db   *sql.DB
	path string
}

// NewSQLiteJournal creates a new SQLite-backed journal.
//
// The path parameter specifies the database file location; ":memory:"
// gives an in-memory database that is lost on Close. The journal
// automatically creates its schema on first use.
//
// Example:
//
//	j, err := journal.NewSQLiteJournal("./bench.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer j.Close()
func NewSQLiteJournal(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	j := &SQLiteJournal{db: db, path: path}
	if err := j.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return j, nil
}

func (j *SQLiteJournal) createTables(ctx context.Context) error {
	table := `
		CREATE TABLE IF NOT EXISTS search_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			size INTEGER NOT NULL,
			expanded INTEGER NOT NULL,
			solution_len INTEGER NOT NULL,
			cost REAL NOT NULL,
			solved INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := j.db.ExecContext(ctx, table); err != nil {
		return fmt.Errorf("failed to create search_runs table: %w", err)
	}
	if _, err := j.db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_runs_run_id ON search_runs(run_id)"); err != nil {
		return fmt.Errorf("failed to create idx_runs_run_id: %w", err)
	}
	if _, err := j.db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_runs_size_algo ON search_runs(size, algorithm)"); err != nil {
		return fmt.Errorf("failed to create idx_runs_size_algo: %w", err)
	}
	return nil
}

// Record persists one completed run outcome.
func (j *SQLiteJournal) Record(ctx context.Context, rec RunRecord) error {
	solved := 0
	if rec.Solved {
		solved = 1
	}
	cost := rec.Cost
	if !rec.Solved {
		cost = 0
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO search_runs (run_id, algorithm, size, expanded, solution_len, cost, solved, elapsed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Algorithm, rec.Size, rec.Expanded, rec.SolutionLen, cost, solved, rec.Elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns every record for the given run ID in insertion order.
func (j *SQLiteJournal) List(ctx context.Context, runID string) ([]RunRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT run_id, algorithm, size, expanded, solution_len, cost, solved, elapsed_ms
		FROM search_runs WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	out, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Summaries aggregates all recorded runs per (size, algorithm) pair.
func (j *SQLiteJournal) Summaries(ctx context.Context) ([]Summary, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT size, algorithm, COUNT(*), SUM(solved), AVG(expanded), AVG(elapsed_ms)
		FROM search_runs
		GROUP BY size, algorithm
		ORDER BY size, algorithm`)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// Close closes the underlying database.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

// scanRecords and scanSummaries are shared with the MySQL journal; both
// backends use the same column layout.
func scanRecords(rows *sql.Rows) ([]RunRecord, error) {
	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var solved int
		var elapsedMs int64
		if err := rows.Scan(&rec.RunID, &rec.Algorithm, &rec.Size, &rec.Expanded,
			&rec.SolutionLen, &rec.Cost, &solved, &elapsedMs); err != nil {
			return nil, fmt.Errorf("failed to scan run record: %w", err)
		}
		rec.Solved = solved != 0
		rec.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run records: %w", err)
	}
	return out, nil
}

func scanSummaries(rows *sql.Rows) ([]Summary, error) {
	var out []Summary
	for rows.Next() {
		var s Summary
		var avgElapsedMs float64
		if err := rows.Scan(&s.Size, &s.Algorithm, &s.Runs, &s.Solved,
			&s.AvgExpanded, &avgElapsedMs); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		s.AvgElapsed = time.Duration(avgElapsedMs * float64(time.Millisecond))
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summaries: %w", err)
	}
	return out, nil
}
