package emit

import "sync"

// BufferedEmitter implements Emitter by storing events in memory.
//
// It captures all events and provides query capabilities for run history
// analysis. Events are organized by runID for efficient retrieval.
//
// Warning: all events stay in memory. For long benchmark campaigns with
// verbose per-expansion events, clear finished runs or use a LogEmitter
// instead.
//
// Example usage:
//
//	emitter := emit.NewBufferedEmitter()
//	engine := search.NewAStar(problem, emitter, nil)
//	engine.Search(ctx, "run-001", start)
//
//	goals := emitter.HistoryWithFilter("run-001", emit.HistoryFilter{Msg: "goal"})
type BufferedEmitter struct {
	mu     sync.RWMutex
	events map[string][]Event // runID -> events
}

// HistoryFilter specifies criteria for filtering run history.
//
// All fields are optional; set fields combine with AND logic.
type HistoryFilter struct {
	// Msg filters by event message (e.g. "expand", "goal").
	Msg string

	// MinDepth filters events with Depth >= MinDepth (nil = no bound).
	MinDepth *int

	// MaxDepth filters events with Depth <= MaxDepth (nil = no bound).
	MaxDepth *int
}

// NewBufferedEmitter creates a new BufferedEmitter.
func NewBufferedEmitter() *BufferedEmitter {
	return &BufferedEmitter{
		events: make(map[string][]Event),
	}
}

// Emit stores the event in the buffer.
func (b *BufferedEmitter) Emit(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[event.RunID] = append(b.events[event.RunID], event)
}

// History returns all events captured for the given run, in emission
// order. The returned slice is a copy.
func (b *BufferedEmitter) History(runID string) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	events := b.events[runID]
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// HistoryWithFilter returns the events for runID that match the filter,
// in emission order.
func (b *BufferedEmitter) HistoryWithFilter(runID string, filter HistoryFilter) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []Event
	for _, event := range b.events[runID] {
		if filter.Msg != "" && event.Msg != filter.Msg {
			continue
		}
		if filter.MinDepth != nil && event.Depth < *filter.MinDepth {
			continue
		}
		if filter.MaxDepth != nil && event.Depth > *filter.MaxDepth {
			continue
		}
		out = append(out, event)
	}
	return out
}

// Clear removes all captured events for the given run.
func (b *BufferedEmitter) Clear(runID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.events, runID)
}

// ClearAll removes every captured event.
func (b *BufferedEmitter) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = make(map[string][]Event)
}
