package search

import (
	"container/heap"
	"context"
	"math"
	"time"

	"github.com/searchlab/statesearch-go/search/emit"
)

// AStar is the heuristic best-first search engine.
//
// It maintains a global priority frontier ordered by f = g + h, expands
// the best entry first, and suppresses duplicates with a search-global
// closed set: once a state has been expanded it is never expanded again,
// even if reached later by a different edge. With a non-uniform cost
// function this makes the algorithm best-first search rather than
// textbook admissible A*; see HeuristicProblem.Heuristic.
//
// Each Search call owns its frontier, node table, and closed set, so
// separate engine instances may run concurrently as long as the Problem
// itself is free of shared mutable state.
//
// Example:
//
//	engine := search.NewAStar[Grid, Swap](problem, nil, nil)
//	res, err := engine.Search(ctx, "run-001", start)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Printf("solved in %d actions, %d expansions\n", len(res.Actions), res.Expanded)
//	}
type AStar[S comparable, A comparable] struct {
	problem HeuristicProblem[S, A]
	emitter emit.Emitter
	metrics *PrometheusMetrics
}

// NewAStar creates an A* engine for the given problem.
//
// The emitter and metrics collaborators are optional; nil disables
// emission and metric recording respectively.
func NewAStar[S comparable, A comparable](problem HeuristicProblem[S, A], emitter emit.Emitter, metrics *PrometheusMetrics) *AStar[S, A] {
	return &AStar[S, A]{
		problem: problem,
		emitter: emitter,
		metrics: metrics,
	}
}

// searchNode is one expanded state in the search tree. Nodes are recorded
// in expansion order; every node except the root has a parent index
// strictly less than its own, which guarantees path reconstruction
// terminates.
type searchNode[S comparable, A comparable] struct {
	state  S
	parent int // index of the parent node, -1 for the root
	action A
}

// Search runs best-first search from start and returns the action
// sequence in execution order, the accumulated path cost, and the number
// of expanded states.
//
// "No solution" is a successful outcome: Found=false, Cost=+Inf, nil
// error. Errors are returned only for context cancellation and problem
// contract violations (negative step cost).
func (a *AStar[S, A]) Search(ctx context.Context, runID string, start S) (Result[A], error) {
	began := time.Now()

	var zeroAction A
	open := make(frontier[S, A], 0)
	heap.Init(&open)

	// The root is seeded with an infinite priority: it is alone on the
	// frontier, so its ordering key is irrelevant, and the engine has no
	// heuristic value for it before the first pop.
	var seq uint64
	heap.Push(&open, &frontierEntry[S, A]{
		f:      math.Inf(1),
		g:      0,
		state:  start,
		parent: -1,
		action: zeroAction,
		seq:    seq,
	})
	seq++

	closed := make(map[S]bool)
	nodes := make([]searchNode[S, A], 0)

	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			a.recordLatency(began, "canceled")
			return Result[A]{}, ctx.Err()
		default:
		}

		entry := heap.Pop(&open).(*frontierEntry[S, A])

		// Duplicates of an already-expanded state are discarded, not
		// re-pushed.
		if closed[entry.state] {
			continue
		}
		closed[entry.state] = true
		nodes = append(nodes, searchNode[S, A]{
			state:  entry.state,
			parent: entry.parent,
			action: entry.action,
		})
		expanded := len(nodes)

		a.observeExpansion(runID, expanded, open.Len())

		// Goal check happens at expansion time so the reported cost and
		// expansion count always correspond to an actually-expanded node.
		if a.problem.IsGoal(entry.state) {
			actions := reconstructActions(nodes, len(nodes)-1)
			a.emitEvent(runID, expanded, 0, "goal", map[string]interface{}{
				"cost":     entry.g,
				"expanded": expanded,
			})
			a.recordLatency(began, "solved")
			return Result[A]{
				Actions:  actions,
				Cost:     entry.g,
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		for _, succ := range a.problem.Successors(entry.state) {
			step := succ.Cost
			if step < 0 {
				a.recordLatency(began, "error")
				return Result[A]{}, &SearchError{
					Message: "problem returned a negative step cost",
					Code:    "NEGATIVE_COST",
					Cause:   ErrNegativeCost,
				}
			}
			if step == 0 {
				step = 1
			}

			// The child's f is computed fresh at push time from the
			// accumulated cost and a fresh heuristic evaluation; frontier
			// entries are immutable once pushed.
			childG := entry.g + step
			heap.Push(&open, &frontierEntry[S, A]{
				f:      childG + a.problem.Heuristic(succ.State),
				g:      childG,
				state:  succ.State,
				parent: expanded - 1,
				action: succ.Action,
				seq:    seq,
			})
			seq++
		}
	}

	a.emitEvent(runID, len(nodes), 0, "frontier_exhausted", map[string]interface{}{
		"expanded": len(nodes),
	})
	a.recordLatency(began, "exhausted")
	return Result[A]{
		Actions:  nil,
		Cost:     math.Inf(1),
		Expanded: len(nodes),
		Found:    false,
	}, nil
}

// reconstructActions walks parent indices from the node at idx back to the
// root, collecting actions, then reverses them into execution order.
func reconstructActions[S comparable, A comparable](nodes []searchNode[S, A], idx int) []A {
	actions := make([]A, 0)
	for i := idx; nodes[i].parent != -1; i = nodes[i].parent {
		actions = append(actions, nodes[i].action)
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}

func (a *AStar[S, A]) observeExpansion(runID string, expanded, frontierLen int) {
	if a.metrics != nil {
		a.metrics.IncrementExpanded(runID, "astar")
		a.metrics.UpdateFrontierDepth(frontierLen)
	}
	if a.emitter != nil {
		a.emitter.Emit(emit.Event{
			RunID: runID,
			Step:  expanded,
			Msg:   "expand",
		})
	}
}

func (a *AStar[S, A]) emitEvent(runID string, step, depth int, msg string, meta map[string]interface{}) {
	if a.emitter == nil {
		return
	}
	a.emitter.Emit(emit.Event{
		RunID: runID,
		Step:  step,
		Depth: depth,
		Msg:   msg,
		Meta:  meta,
	})
}

func (a *AStar[S, A]) recordLatency(began time.Time, status string) {
	if a.metrics != nil {
		a.metrics.RecordSolveLatency("astar", time.Since(began), status)
	}
}
