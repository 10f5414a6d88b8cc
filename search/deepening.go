package search

import (
	"context"
	"math"
	"time"

	"github.com/searchlab/statesearch-go/search/emit"
)

// DefaultMaxDepth is the deepest limit the iterative deepening driver
// tries when Options.MaxDepth is zero.
const DefaultMaxDepth = 64

// DefaultMaxExpansions is the cumulative expansion budget applied when
// Options.MaxExpansions is zero.
const DefaultMaxExpansions = 50000

// Options configures the iterative deepening driver.
//
// Zero values are valid; the driver substitutes documented defaults.
type Options struct {
	// MaxDepth is the largest depth limit tried. If 0, DefaultMaxDepth
	// is used. Negative values are rejected at Search time.
	MaxDepth int

	// MaxExpansions is the cumulative expansion budget across all depth
	// limits. If 0, DefaultMaxExpansions is used. Negative values are
	// rejected at Search time.
	MaxExpansions int
}

// IterativeDeepening repeatedly invokes a depth-limited DFS engine with
// limits 0, 1, 2, ... until a solution is found or a cutoff trips.
//
// Cutoffs, checked in this order each round:
//   - the cumulative expansion budget is already spent,
//   - the most recent call expanded exactly as many states as the
//     previous one (stagnation: the reachable space is fully enumerated
//     and a deeper limit cannot help),
//   - the configured maximum depth is exceeded.
//
// Every depth-limited call is fully independent: a fresh path and visited
// set each time. Only the running totals live in the driver.
type IterativeDeepening[S comparable, A comparable] struct {
	engine  *DepthLimited[S, A]
	emitter emit.Emitter
	metrics *PrometheusMetrics
	opts    Options
}

// NewIterativeDeepening creates an iterative deepening driver around a
// fresh depth-limited engine for the given problem. The emitter and
// metrics collaborators are optional; nil disables them.
func NewIterativeDeepening[S comparable, A comparable](problem Problem[S, A], emitter emit.Emitter, metrics *PrometheusMetrics, opts Options) *IterativeDeepening[S, A] {
	return &IterativeDeepening[S, A]{
		engine:  NewDepthLimited(problem, emitter, metrics),
		emitter: emitter,
		metrics: metrics,
		opts:    opts,
	}
}

// Search runs iterative deepening from start.
//
// On success the returned Expanded is the cumulative count across all
// limits tried, not just the successful call. Exhausting the depth
// ceiling or the expansion budget is reported the same way as "no
// solution": Found=false, nil error.
func (it *IterativeDeepening[S, A]) Search(ctx context.Context, runID string, start S) (Result[A], error) {
	if it.opts.MaxDepth < 0 || it.opts.MaxExpansions < 0 {
		return Result[A]{}, &SearchError{
			Message: "iterative deepening limits are negative",
			Code:    "INVALID_LIMIT",
			Cause:   ErrInvalidLimit,
		}
	}

	maxDepth := it.opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	maxExpansions := it.opts.MaxExpansions
	if maxExpansions == 0 {
		maxExpansions = DefaultMaxExpansions
	}

	began := time.Now()
	total := 0
	last := -1

	for limit := 0; limit <= maxDepth; limit++ {
		if total >= maxExpansions {
			it.emitRound(runID, limit, total, "budget_exhausted")
			break
		}

		res, err := it.engine.Search(ctx, runID, start, limit)
		if err != nil {
			it.recordLatency(began, "error")
			return Result[A]{}, err
		}

		// A repeat of the previous per-call count means the limit no
		// longer constrains the search; deepening further cannot help.
		if res.Expanded == last {
			it.emitRound(runID, limit, total, "stagnation")
			break
		}
		last = res.Expanded
		total += res.Expanded

		if it.metrics != nil {
			it.metrics.IncrementDeepeningRounds(runID)
		}
		it.emitRound(runID, limit, total, "deepen")

		if res.Found {
			res.Expanded = total
			it.recordLatency(began, "solved")
			return res, nil
		}
	}

	it.recordLatency(began, "exhausted")
	return Result[A]{
		Actions:  nil,
		Cost:     math.Inf(1),
		Expanded: total,
		Found:    false,
	}, nil
}

func (it *IterativeDeepening[S, A]) emitRound(runID string, limit, total int, msg string) {
	if it.emitter == nil {
		return
	}
	it.emitter.Emit(emit.Event{
		RunID: runID,
		Depth: limit,
		Msg:   msg,
		Meta:  map[string]interface{}{"limit": limit, "total_expanded": total},
	})
}

func (it *IterativeDeepening[S, A]) recordLatency(began time.Time, status string) {
	if it.metrics != nil {
		it.metrics.RecordSolveLatency("iddfs", time.Since(began), status)
	}
}
