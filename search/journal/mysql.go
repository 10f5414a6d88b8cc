package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLJournal is a MySQL implementation of Journal.
//
// Designed for benchmark campaigns whose results are collected from
// several hosts into one shared database. Uses the same column layout as
// SQLiteJournal, so reporting queries are portable between backends.
type MySQLJournal struct {
	db *sql.DB
}

// NewMySQLJournal creates a new MySQL-backed journal.
//
// The dsn parameter is a go-sql-driver DSN, e.g.
// "user:pass@tcp(localhost:3306)/statesearch?parseTime=true".
// The journal automatically creates its schema on first use.
func NewMySQLJournal(dsn string) (*MySQLJournal, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	j := &MySQLJournal{db: db}
	if err := j.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return j, nil
}

func (j *MySQLJournal) createTables(ctx context.Context) error {
	table := `
		CREATE TABLE IF NOT EXISTS search_runs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			run_id VARCHAR(255) NOT NULL,
			algorithm VARCHAR(32) NOT NULL,
			size INT NOT NULL,
			expanded INT NOT NULL,
			solution_len INT NOT NULL,
			cost DOUBLE NOT NULL,
			solved TINYINT NOT NULL,
			elapsed_ms BIGINT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_runs_run_id (run_id),
			INDEX idx_runs_size_algo (size, algorithm)
		)
	`
	if _, err := j.db.ExecContext(ctx, table); err != nil {
		return fmt.Errorf("failed to create search_runs table: %w", err)
	}
	return nil
}

// Record persists one completed run outcome.
func (j *MySQLJournal) Record(ctx context.Context, rec RunRecord) error {
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
func (j *MySQLJournal) List(ctx context.Context, runID string) ([]RunRecord, error) {
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
func (j *MySQLJournal) Summaries(ctx context.Context) ([]Summary, error) {
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
func (j *MySQLJournal) Close() error {
	return j.db.Close()
}
