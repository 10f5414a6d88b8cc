package puzzle

import (
	"fmt"
	"math/rand"
	"time"
)

// Random generates a random solvable instance of size n: a coherent goal
// arrangement (every shared edge agrees by construction) and a start
// grid holding the same tiles shuffled.
//
// A nil rng falls back to a time-seeded source; pass a fixed-seed
// *rand.Rand for reproducible instances.
func Random(n int, rng *rand.Rand) (start, goal Grid, err error) {
	if n < MinSize || n > MaxSize {
		return Grid{}, Grid{}, fmt.Errorf("puzzle size must be between %d and %d, got %d", MinSize, MaxSize, n)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	edge := func() uint8 { return uint8(rng.Intn(9) + 1) }

	// Build the goal row by row, copying each tile's top and left edge
	// from its already-placed neighbors so every adjacency holds.
	tiles := make([]Tile, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			t := Tile{Right: edge(), Bottom: edge()}
			if r == 0 {
				t.Top = edge()
			} else {
				t.Top = tiles[(r-1)*n+c].Bottom
			}
			if c == 0 {
				t.Left = edge()
			} else {
				t.Left = tiles[r*n+c-1].Right
			}
			tiles = append(tiles, t)
		}
	}

	goal, err = NewGrid(n, tiles)
	if err != nil {
		return Grid{}, Grid{}, err
	}

	shuffled := make([]Tile, len(tiles))
	copy(shuffled, tiles)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	start, err = NewGrid(n, shuffled)
	if err != nil {
		return Grid{}, Grid{}, err
	}
	return start, goal, nil
}

// Unsolvable builds an instance of size n that no sequence of swaps can
// solve: tile k carries the value k+1 on all four edges, so any two
// distinct neighbors disagree on their shared edge under every
// arrangement.
func Unsolvable(n int) (Grid, error) {
	if n < MinSize || n > MaxSize {
		return Grid{}, fmt.Errorf("puzzle size must be between %d and %d, got %d", MinSize, MaxSize, n)
	}
	tiles := make([]Tile, n*n)
	for k := range tiles {
		v := uint8(k + 1)
		tiles[k] = Tile{Top: v, Right: v, Bottom: v, Left: v}
	}
	return NewGrid(n, tiles)
}
