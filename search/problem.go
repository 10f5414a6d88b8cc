// Package search provides generic state-space search engines: heuristic
// best-first search (A*) and iterative-deepening depth-limited search.
//
// The engines are generic over a Problem abstraction and hold no knowledge
// of any concrete domain. States and actions are opaque comparable values
// owned by the Problem; the engines only read, compare, and label them.
package search

import "context"

// Successor is a single-action transition returned by a Problem.
//
// Cost is the step cost of taking Action from the parent state. A zero
// Cost means unit cost (1); this is the only cost any bundled problem
// produces today, but the field stays numeric and additive so a problem
// with variable action costs can be plugged in later. Negative costs are
// rejected by the engines.
type Successor[S comparable, A comparable] struct {
	// Action labels the parent->State edge. The engines never inspect it.
	Action A

	// State is the configuration reached by applying Action.
	// It must be a fresh value that does not alias the parent's storage.
	State S

	// Cost is the step cost; zero means unit.
	Cost float64
}

// Problem is the contract every searchable domain implements.
//
// Implementations must be free of shared mutable state across calls:
// Successors must not mutate its argument and must return fresh state
// values, so that interleaved or concurrent searches (each with its own
// engine instance) cannot corrupt each other.
//
// Type parameters:
//   - S: state type. Must be comparable with structural equality so that
//     visited-set membership is well defined.
//   - A: action type. Must be comparable for equality.
type Problem[S comparable, A comparable] interface {
	// Successors returns every single-action transition reachable from
	// state. An empty slice means a dead end and is not an error.
	Successors(state S) []Successor[S, A]

	// IsGoal reports whether state satisfies the goal condition.
	// It must be a pure predicate, total over all reachable states.
	IsGoal(state S) bool
}

// HeuristicProblem extends Problem with an estimate of remaining cost,
// required by the A* engine.
type HeuristicProblem[S comparable, A comparable] interface {
	Problem[S, A]

	// Heuristic estimates the cost remaining from state to any goal
	// state. It must return a non-negative value. Admissibility is not
	// assumed: unless the caller supplies a verified admissible
	// heuristic, A* here is best-first search without an optimality
	// guarantee.
	Heuristic(state S) float64
}

// Searcher is the common surface of the A* engine and the iterative
// deepening driver. The depth-limited engine is excluded: its Search
// takes an explicit limit argument.
//
// A nil-error return with Found=false is the first-class "no solution"
// outcome; errors are reserved for invalid arguments, problem contract
// violations, and context cancellation.
type Searcher[S comparable, A comparable] interface {
	Search(ctx context.Context, runID string, start S) (Result[A], error)
}

// Result is the outcome of one search run.
type Result[A comparable] struct {
	// Actions is the solution in execution order (start -> goal).
	// Nil when Found is false; empty (non-nil) when the start state is
	// already a goal.
	Actions []A

	// Cost is the accumulated path cost of Actions. +Inf when Found is
	// false.
	Cost float64

	// Expanded counts genuinely accepted expansions: once per distinct
	// state for A*, once per accepted stack pop for depth-limited DFS,
	// cumulative across limits for iterative deepening.
	Expanded int

	// Found reports whether a goal state was reached.
	Found bool
}
