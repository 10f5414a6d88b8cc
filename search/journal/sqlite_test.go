package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestSQLiteJournal(t *testing.T) *SQLiteJournal {
	t.Helper()
	j, err := NewSQLiteJournal(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteJournal failed: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestSQLiteJournal(t *testing.T) {
	ctx := context.Background()

	t.Run("record and list round trip", func(t *testing.T) {
		j := newTestSQLiteJournal(t)

		rec := RunRecord{
			RunID:       "bench-2x2-001",
			Algorithm:   "astar",
			Size:        2,
			Expanded:    7,
			SolutionLen: 3,
			Cost:        3,
			Solved:      true,
			Elapsed:     12 * time.Millisecond,
		}
		if err := j.Record(ctx, rec); err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		got, err := j.List(ctx, "bench-2x2-001")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if diff := cmp.Diff([]RunRecord{rec}, got); diff != "" {
			t.Errorf("records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unsolved runs store zero cost", func(t *testing.T) {
		j := newTestSQLiteJournal(t)

		rec := RunRecord{
			RunID:     "bench-4x4-000",
			Algorithm: "iddfs",
			Size:      4,
			Expanded:  50000,
			Solved:    false,
			Elapsed:   time.Second,
		}
		if err := j.Record(ctx, rec); err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		got, err := j.List(ctx, "bench-4x4-000")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if got[0].Cost != 0 {
			t.Errorf("expected cost 0 for unsolved run, got %v", got[0].Cost)
		}
		if got[0].Solved {
			t.Error("expected Solved=false")
		}
	})

	t.Run("unknown run id reports not found", func(t *testing.T) {
		j := newTestSQLiteJournal(t)

		_, err := j.List(ctx, "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("summaries aggregate and order by size then algorithm", func(t *testing.T) {
		j := newTestSQLiteJournal(t)

		records := []RunRecord{
			{RunID: "a", Algorithm: "iddfs", Size: 3, Expanded: 40, Solved: true, Elapsed: 40 * time.Millisecond},
			{RunID: "b", Algorithm: "astar", Size: 3, Expanded: 10, Solved: true, Elapsed: 10 * time.Millisecond},
			{RunID: "c", Algorithm: "astar", Size: 3, Expanded: 20, Solved: false, Elapsed: 20 * time.Millisecond},
			{RunID: "d", Algorithm: "astar", Size: 2, Expanded: 4, Solved: true, Elapsed: 4 * time.Millisecond},
		}
		for _, rec := range records {
			if err := j.Record(ctx, rec); err != nil {
				t.Fatalf("Record failed: %v", err)
			}
		}

		got, err := j.Summaries(ctx)
		if err != nil {
			t.Fatalf("Summaries failed: %v", err)
		}
		want := []Summary{
			{Size: 2, Algorithm: "astar", Runs: 1, Solved: 1, AvgExpanded: 4, AvgElapsed: 4 * time.Millisecond},
			{Size: 3, Algorithm: "astar", Runs: 2, Solved: 1, AvgExpanded: 15, AvgElapsed: 15 * time.Millisecond},
			{Size: 3, Algorithm: "iddfs", Runs: 1, Solved: 1, AvgExpanded: 40, AvgElapsed: 40 * time.Millisecond},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("summaries mismatch (-want +got):\n%s", diff)
		}
	})
}
