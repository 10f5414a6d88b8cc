package search

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDepthLimitedSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("negative limit is rejected", func(t *testing.T) {
		prob := &graphProblem{goals: map[string]bool{"S": true}}
		engine := NewDepthLimited[string, string](prob, nil, nil)

		_, err := engine.Search(ctx, "t", "S", -1)
		if !errors.Is(err, ErrInvalidLimit) {
			t.Fatalf("expected ErrInvalidLimit, got %v", err)
		}
	})

	t.Run("start is already the goal at limit zero", func(t *testing.T) {
		prob := &graphProblem{goals: map[string]bool{"S": true}}
		engine := NewDepthLimited[string, string](prob, nil, nil)

		res, err := engine.Search(ctx, "t", "S", 0)
		if err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
		if !res.Found {
			t.Fatal("expected Found=true")
		}
		if len(res.Actions) != 0 {
			t.Errorf("expected empty Actions, got %v", res.Actions)
		}
		if res.Cost != 0 {
			t.Errorf("expected cost 0, got %v", res.Cost)
		}
		if res.Expanded != 1 {
			t.Errorf("expected 1 expansion, got %d", res.Expanded)
		}
	})

	t.Run("depth bound hides deeper goals", func(t *testing.T) {
		prob := &graphProblem{
			edges: map[string][]Successor[string, string]{
				"S": {edge("A", "S->A", 0)},
				"A": {edge("B", "A->B", 0)},
			},
			goals: map[string]bool{"B": true},
		}
		engine := NewDepthLimited[string, string](prob, nil, nil)

		res, err := engine.Search(ctx, "t", "S", 1)
		if err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
		if res.Found {
			t.Fatal("goal at depth 2 must be invisible at limit 1")
		}
		if !math.IsInf(res.Cost, 1) {
			t.Errorf("expected +Inf cost, got %v", res.Cost)
		}

		res, err = engine.Search(ctx, "t", "S", 2)
		if err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
		if !res.Found {
			t.Fatal("expected a solution at limit 2")
		}
		want := []string{"S->A", "A->B"}
		if diff := cmp.Diff(want, res.Actions); diff != "" {
			t.Errorf("actions mismatch (-want +got):\n%s", diff)
		}
		if res.Cost != 2 {
			t.Errorf("expected cost 2, got %v", res.Cost)
		}
	})

	t.Run("cycles on the current path terminate", func(t *testing.T) {
		prob := &graphProblem{
			edges: map[string][]Successor[string, string]{
				"S": {edge("A", "S->A", 0)},
				"A": {edge("S", "A->S", 0)},
			},
			goals: map[string]bool{},
		}
		engine := NewDepthLimited[string, string](prob, nil, nil)

		res, err := engine.Search(ctx, "t", "S", 10)
		if err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
		if res.Found {
			t.Fatal("expected Found=false")
		}
		// S and A each accepted once; the cycle entries are discarded.
		if res.Expanded != 2 {
			t.Errorf("expected 2 expansions, got %d", res.Expanded)
		}
	})

	t.Run("backtracking frees states for later paths", func(t *testing.T) {
		// The last successor of S is explored first (LIFO), reaching X at
		// depth 3 where the goal below it exceeds the limit. The trim on
		// backtrack must release X so the shallower path through A can
		// reach the goal.
		prob := &graphProblem{
			edges: map[string][]Successor[string, string]{
				"S": {edge("A", "S->A", 0), edge("B", "S->B", 0)},
				"B": {edge("M", "B->M", 0)},
				"M": {edge("X", "M->X", 0)},
				"A": {edge("X", "A->X", 0)},
				"X": {edge("G", "X->G", 0)},
			},
			goals: map[string]bool{"G": true},
		}
		engine := NewDepthLimited[string, string](prob, nil, nil)

		res, err := engine.Search(ctx, "t", "S", 3)
		if err != nil {
			t.Fatalf("Search returned error: %v", err)
		}
		if !res.Found {
			t.Fatal("expected a solution through the second branch")
		}
		want := []string{"S->A", "A->X", "X->G"}
		if diff := cmp.Diff(want, res.Actions); diff != "" {
			t.Errorf("actions mismatch (-want +got):\n%s", diff)
		}
		// S, B, M, X, A, X again, G; the deep G pop is discarded, not
		// counted.
		if res.Expanded != 7 {
			t.Errorf("expected 7 expansions, got %d", res.Expanded)
		}
	})

	t.Run("canceled context aborts the run", func(t *testing.T) {
		prob := &graphProblem{goals: map[string]bool{"S": true}}
		engine := NewDepthLimited[string, string](prob, nil, nil)

		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := engine.Search(canceled, "t", "S", 0)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
