// Package journal persists completed search run outcomes for reporting.
//
// The journal records only finished runs (algorithm, instance size,
// expansion count, solution length, elapsed time) — never frontier or
// visited-set state. It backs the benchmark driver's report table.
package journal

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested run ID has no records.
var ErrNotFound = errors.New("not found")

// RunRecord is the outcome of one completed search run.
type RunRecord struct {
	// RunID identifies the search run.
	RunID string

	// Algorithm names the engine used: "astar" or "iddfs".
	Algorithm string

	// Size is the puzzle grid size (N for an NxN instance).
	Size int

	// Expanded is the number of states the run expanded.
	Expanded int

	// SolutionLen is the number of actions in the solution, 0 if unsolved.
	SolutionLen int

	// Cost is the reported path cost. Meaningful only when Solved.
	Cost float64

	// Solved reports whether a goal state was reached.
	Solved bool

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Summary aggregates the recorded runs for one (size, algorithm) pair.
type Summary struct {
	Size        int
	Algorithm   string
	Runs        int
	Solved      int
	AvgExpanded float64
	AvgElapsed  time.Duration
}

// Journal persists completed run records.
//
// Implementations:
//   - MemJournal: in-memory, for tests and one-shot benchmark runs
//   - SQLiteJournal: single-file database, zero-setup local persistence
//   - MySQLJournal: shared database for benchmark campaigns across hosts
type Journal interface {
	// Record persists one completed run outcome.
	Record(ctx context.Context, rec RunRecord) error

	// List returns every record for the given run ID in insertion order.
	// Returns ErrNotFound if the run ID has no records.
	List(ctx context.Context, runID string) ([]RunRecord, error)

	// Summaries aggregates all recorded runs per (size, algorithm) pair,
	// ordered by size then algorithm.
	Summaries(ctx context.Context) ([]Summary, error)

	// Close releases any underlying resources.
	Close() error
}
