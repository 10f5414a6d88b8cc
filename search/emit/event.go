package emit

// Event represents an observability event emitted during a search run.
//
// Events provide insight into engine behavior:
//   - state expansions ("expand")
//   - goal discovery ("goal")
//   - exhaustion of the frontier or stack ("frontier_exhausted",
//     "stack_exhausted")
//   - iterative deepening rounds and cutoffs ("deepen", "stagnation",
//     "budget_exhausted")
type Event struct {
	// RunID identifies the search run that emitted this event.
	RunID string

	// Step is the expansion counter at the time of emission (1-indexed).
	// Zero for run-level events that precede any expansion.
	Step int

	// Depth is the depth or depth limit the event relates to. Always zero
	// for A* events, which have no depth bound.
	Depth int

	// Msg is a short machine-matchable description of the event.
	Msg string

	// Meta contains additional structured data specific to this event.
	// Common keys:
	//   - "cost": path cost at goal discovery
	//   - "expanded": expansion count at emission
	//   - "limit": the depth limit in force
	//   - "total_expanded": cumulative count across deepening rounds
	Meta map[string]interface{}
}
