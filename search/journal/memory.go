package journal

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemJournal is an in-memory implementation of Journal.
//
// Designed for tests and single-process benchmark runs where persistence
// across invocations isn't required. Thread-safe for concurrent use; the
// benchmark driver records from several goroutines at once.
type MemJournal struct {
	mu      sync.RWMutex
	records []RunRecord
}

// NewMemJournal creates a new in-memory journal.
func NewMemJournal() *MemJournal {
	return &MemJournal{records: make([]RunRecord, 0)}
}

// Record appends one completed run outcome.
func (m *MemJournal) Record(_ context.Context, rec RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

// List returns every record for the given run ID in insertion order.
func (m *MemJournal) List(_ context.Context, runID string) ([]RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []RunRecord
	for _, rec := range m.records {
		if rec.RunID == runID {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Summaries aggregates all recorded runs per (size, algorithm) pair.
func (m *MemJournal) Summaries(_ context.Context) ([]Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type key struct {
		size int
		algo string
	}
	type acc struct {
		runs     int
		solved   int
		expanded int
		elapsed  time.Duration
	}

	groups := make(map[key]*acc)
	for _, rec := range m.records {
		k := key{size: rec.Size, algo: rec.Algorithm}
		g, ok := groups[k]
		if !ok {
			g = &acc{}
			groups[k] = g
		}
		g.runs++
		if rec.Solved {
			g.solved++
		}
		g.expanded += rec.Expanded
		g.elapsed += rec.Elapsed
	}

	out := make([]Summary, 0, len(groups))
	for k, g := range groups {
		out = append(out, Summary{
			Size:        k.size,
			Algorithm:   k.algo,
			Runs:        g.runs,
			Solved:      g.solved,
			AvgExpanded: float64(g.expanded) / float64(g.runs),
			AvgElapsed:  g.elapsed / time.Duration(g.runs),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size != out[j].Size {
			return out[i].Size < out[j].Size
		}
		return out[i].Algorithm < out[j].Algorithm
	})
	return out, nil
}

// Close is a no-op for the in-memory journal.
func (m *MemJournal) Close() error { return nil }
