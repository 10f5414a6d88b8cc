package puzzle

import (
	"fmt"

	"github.com/searchlab/statesearch-go/search"
)

// Puzzle implements search.Problem and search.HeuristicProblem for the
// 4-sided domino grid.
//
// The goal test is the adjacency predicate: a grid is solved when every
// vertically neighboring pair of tiles matches on the shared horizontal
// edge and every horizontally neighboring pair matches on the shared
// vertical edge. The heuristic compares against a stored reference goal
// arrangement and counts mismatched positions.
//
// Puzzle is stateless between calls and safe for concurrent use by
// independent engine instances.
type Puzzle struct {
	n    int
	goal Grid
}

var _ search.HeuristicProblem[Grid, Swap] = (*Puzzle)(nil)

// New creates a puzzle of size n with the given reference goal
// arrangement. The goal grid is consulted only by the heuristic; the
// goal test itself is the adjacency predicate and accepts any solved
// arrangement.
func New(n int, goal Grid) (*Puzzle, error) {
	if n < MinSize || n > MaxSize {
		return nil, fmt.Errorf("puzzle size must be between %d and %d, got %d", MinSize, MaxSize, n)
	}
	if goal.Size() != n {
		return nil, fmt.Errorf("goal grid size %d does not match puzzle size %d", goal.Size(), n)
	}
	return &Puzzle{n: n, goal: goal}, nil
}

// Size returns the puzzle dimension N.
func (p *Puzzle) Size() int { return p.n }

// Goal returns the reference goal arrangement.
func (p *Puzzle) Goal() Grid { return p.goal }

// Successors returns every state reachable from g with a single pairwise
// swap, in canonical order: positions are taken in row-major linear
// order i < j. Each successor state is a fresh Grid value.
func (p *Puzzle) Successors(g Grid) []search.Successor[Grid, Swap] {
	cells := p.n * p.n
	out := make([]search.Successor[Grid, Swap], 0, cells*(cells-1)/2)
	for i := 0; i < cells; i++ {
		for j := i + 1; j < cells; j++ {
			action := Swap{
				R1: int8(i / p.n), C1: int8(i % p.n),
				R2: int8(j / p.n), C2: int8(j % p.n),
			}
			out = append(out, search.Successor[Grid, Swap]{
				Action: action,
				State:  g.Apply(action),
			})
		}
	}
	return out
}

// IsGoal reports whether every neighboring tile pair in g matches on its
// shared edge.
func (p *Puzzle) IsGoal(g Grid) bool {
	for r := 0; r < p.n; r++ {
		for c := 0; c < p.n; c++ {
			if r > 0 && !g.At(r, c).Under(g.At(r-1, c)) {
				return false
			}
			if c > 0 && !g.At(r, c).RightOf(g.At(r, c-1)) {
				return false
			}
		}
	}
	return true
}

// Heuristic counts the positions of g whose tile differs from the stored
// reference goal arrangement.
//
// The estimate is not proven admissible for pairwise-swap actions; A*
// over this puzzle is best-first search without an optimality guarantee.
func (p *Puzzle) Heuristic(g Grid) float64 {
	mismatches := 0
	for i := 0; i < p.n*p.n; i++ {
		if g.Cells[i] != p.goal.Cells[i] {
			mismatches++
		}
	}
	return float64(mismatches)
}
