package search

import (
	"context"
	"math"
	"time"

	"github.com/searchlab/statesearch-go/search/emit"
)

// DepthLimited is the depth-limited depth-first search engine.
//
// It keeps an explicit LIFO stack instead of recursing, and a path-local
// visited set: a state counts as visited only while it sits on the
// current path from the root. When the search backtracks past a state it
// is removed from the set again, which permits revisiting the same state
// via a different path later while still forbidding cycles within the
// current path.
//
// Backtracking is realized by trimming: before a popped entry is
// accepted, every path entry deeper than it is removed from the running
// path and the visited set. Without this trim, states on an abandoned
// branch would stay incorrectly marked visited and block legitimate later
// expansion of the same state on another branch.
type DepthLimited[S comparable, A comparable] struct {
	problem Problem[S, A]
	emitter emit.Emitter
	metrics *PrometheusMetrics
}

// NewDepthLimited creates a depth-limited DFS engine for the given
// problem. The emitter and metrics collaborators are optional; nil
// disables them.
func NewDepthLimited[S comparable, A comparable](problem Problem[S, A], emitter emit.Emitter, metrics *PrometheusMetrics) *DepthLimited[S, A] {
	return &DepthLimited[S, A]{
		problem: problem,
		emitter: emitter,
		metrics: metrics,
	}
}

// stackEntry is one pending expansion on the DFS stack.
type stackEntry[S comparable, A comparable] struct {
	state  S
	depth  int
	action A
}

// Search runs depth-first search from start, refusing to expand states
// deeper than limit actions from the root.
//
// On success the returned actions exclude the artificial root action, and
// Expanded counts only genuinely accepted expansions: popped entries
// discarded as cycles or for exceeding the limit are not counted.
//
// A negative limit is rejected with ErrInvalidLimit.
func (d *DepthLimited[S, A]) Search(ctx context.Context, runID string, start S, limit int) (Result[A], error) {
	if limit < 0 {
		return Result[A]{}, &SearchError{
			Message: "depth limit is negative",
			Code:    "INVALID_LIMIT",
			Cause:   ErrInvalidLimit,
		}
	}

	began := time.Now()

	var zeroAction A
	expanded := 0
	path := make([]S, 0)        // states on the current root->here path
	actions := make([]A, 0)     // actions taken along path, sentinel first
	visited := make(map[S]bool) // path-local visited set

	stack := []stackEntry[S, A]{{state: start, depth: 0, action: zeroAction}}
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			d.recordLatency(began, "canceled")
			return Result[A]{}, ctx.Err()
		default:
		}

		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Cycles within the current path and states beyond the depth
		// bound are discarded without expansion.
		if visited[entry.state] || entry.depth > limit {
			continue
		}

		// Trim the abandoned branch: everything deeper than this entry
		// leaves both the path and the visited set.
		for len(actions) > entry.depth {
			last := path[len(path)-1]
			delete(visited, last)
			path = path[:len(path)-1]
			actions = actions[:len(actions)-1]
		}

		expanded++
		visited[entry.state] = true
		path = append(path, entry.state)
		actions = append(actions, entry.action)

		if d.metrics != nil {
			d.metrics.IncrementExpanded(runID, "dfs")
			d.metrics.UpdateFrontierDepth(len(stack))
		}
		if d.emitter != nil {
			d.emitter.Emit(emit.Event{
				RunID: runID,
				Step:  expanded,
				Depth: entry.depth,
				Msg:   "expand",
			})
		}

		if d.problem.IsGoal(entry.state) {
			// Drop the sentinel root action.
			solution := make([]A, len(actions)-1)
			copy(solution, actions[1:])
			if d.emitter != nil {
				d.emitter.Emit(emit.Event{
					RunID: runID,
					Step:  expanded,
					Depth: entry.depth,
					Msg:   "goal",
					Meta:  map[string]interface{}{"expanded": expanded},
				})
			}
			d.recordLatency(began, "solved")
			return Result[A]{
				Actions:  solution,
				Cost:     float64(len(solution)),
				Expanded: expanded,
				Found:    true,
			}, nil
		}

		for _, succ := range d.problem.Successors(entry.state) {
			stack = append(stack, stackEntry[S, A]{
				state:  succ.State,
				depth:  entry.depth + 1,
				action: succ.Action,
			})
		}
	}

	if d.emitter != nil {
		d.emitter.Emit(emit.Event{
			RunID: runID,
			Step:  expanded,
			Depth: limit,
			Msg:   "stack_exhausted",
			Meta:  map[string]interface{}{"limit": limit, "expanded": expanded},
		})
	}
	d.recordLatency(began, "exhausted")
	return Result[A]{
		Actions:  nil,
		Cost:     math.Inf(1),
		Expanded: expanded,
		Found:    false,
	}, nil
}

func (d *DepthLimited[S, A]) recordLatency(began time.Time, status string) {
	if d.metrics != nil {
		d.metrics.RecordSolveLatency("dfs", time.Since(began), status)
	}
}
