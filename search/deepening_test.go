package search

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/searchlab/statesearch-go/search/emit"
)

// intTree is an infinite binary tree over ints rooted at 0, with no goal
// states. It gives the deepening driver unbounded work so the expansion
// budget is what stops it.
type intTree struct{}

func (intTree) Successors(n int) []Successor[int, int] {
	return []Successor[int, int]{
		{Action: 2*n + 1, State: 2*n + 1},
		{Action: 2*n + 2, State: 2*n + 2},
	}
}

func (intTree) IsGoal(int) bool { return false }

func TestIterativeDeepeningSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("negative options are rejected", func(t *testing.T) {
		prob := &graphProblem{goals: map[string]bool{"S": true}}
		driver := NewIterativeDeepening[string, string](prob, nil, nil, Options{MaxDepth: -1})

		_, err := driver.Search(ctx, "t", "S")
		if !errors.Is(err, ErrInvalidLimit) {
			t.Fatalf("expected ErrInvalidLimit, got %v", err)
		}
	})

	t.Run("reports the cumulative expansion count", func(t *testing.T) {
		prob := &graphProblem{
			edges: map[string][]Successor[string, string]{
				"S": {edge("A", "S->A", 0)},
				"A": {edge("B", "A->B", 0)},
			},
			goals: map[string]bool{"B": true},
		}
		driver := NewIterativeDeepening[string, string](prob, nil, nil, Options{})

		res, err := driver.Search(ctx, "t", "S")
		if err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
		if !res.Found {
			t.Fatal("expected a solution")
		}
		want := []string{"S->A", "A->B"}
		if diff := cmp.Diff(want, res.Actions); diff != "" {
			t.Errorf("actions mismatch (-want +got):\n%s", diff)
		}
		if res.Cost != 2 {
			t.Errorf("expected cost 2, got %v", res.Cost)
		}
		// Limit 0 expands 1, limit 1 expands 2, limit 2 expands 3 and
		// finds the goal. The reported count sums all three rounds.
		if res.Expanded != 6 {
			t.Errorf("expected cumulative count 6, got %d", res.Expanded)
		}
	})

	t.Run("stagnation halts a fully enumerated space", func(t *testing.T) {
		prob := &graphProblem{
			edges: map[string][]Successor[string, string]{
				"S": {edge("A", "S->A", 0)},
			},
			goals: map[string]bool{},
		}
		emitter := emit.NewBufferedEmitter()
		driver := NewIterativeDeepening[string, string](prob, emitter, nil, Options{})

		res, err := driver.Search(ctx, "t", "S")
		if err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
		if res.Found {
			t.Fatal("expected Found=false")
		}
		// Limit 0 expands 1, limit 1 expands 2, limit 2 repeats 2 and is
		// detected as stagnation before accumulating.
		if res.Expanded != 3 {
			t.Errorf("expected cumulative count 3, got %d", res.Expanded)
		}
		stagnation := emitter.HistoryWithFilter("t", emit.HistoryFilter{Msg: "stagnation"})
		if len(stagnation) != 1 {
			t.Errorf("expected one stagnation event, got %d", len(stagnation))
		}
	})

	t.Run("expansion budget halts an unbounded space", func(t *testing.T) {
		driver := NewIterativeDeepening[int, int](intTree{}, nil, nil, Options{
			MaxDepth:      10,
			MaxExpansions: 10,
		})

		res, err := driver.Search(ctx, "t", 0)
		if err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
		if res.Found {
			t.Fatal("expected Found=false")
		}
		// Per-limit counts on the binary tree are 1, 3, 7; the budget
		// check at the top of the next round sees 11 >= 10 and stops.
		if res.Expanded != 11 {
			t.Errorf("expected cumulative count 11, got %d", res.Expanded)
		}
	})

	t.Run("depth ceiling bounds the deepest round", func(t *testing.T) {
		prob := &graphProblem{
			edges: map[string][]Successor[string, string]{
				"S":  {edge("A1", "S->A1", 0)},
				"A1": {edge("A2", "A1->A2", 0)},
				"A2": {edge("A3", "A2->A3", 0)},
				"A3": {edge("A4", "A3->A4", 0)},
				"A4": {edge("G", "A4->G", 0)},
			},
			goals: map[string]bool{"G": true},
		}
		driver := NewIterativeDeepening[string, string](prob, nil, nil, Options{MaxDepth: 3})

		res, err := driver.Search(ctx, "t", "S")
		if err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
		if res.Found {
			t.Fatal("goal at depth 5 must be unreachable with MaxDepth 3")
		}
		// Limits 0 through 3 expand 1+2+3+4 states.
		if res.Expanded != 10 {
			t.Errorf("expected cumulative count 10, got %d", res.Expanded)
		}
	})

	t.Run("engine errors propagate", func(t *testing.T) {
		prob := &graphProblem{goals: map[string]bool{"S": true}}
		driver := NewIterativeDeepening[string, string](prob, nil, nil, Options{})

		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := driver.Search(canceled, "t", "S")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
