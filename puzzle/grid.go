package puzzle

import "fmt"

// Grid size bounds. A 5x5 grid would need 25 cells and a larger backing
// array; the puzzle is defined for 2..4 like the search spaces it was
// benchmarked on.
const (
	MinSize = 2
	MaxSize = 4

	maxCells = MaxSize * MaxSize
)

// Grid is one complete configuration of the puzzle: an NxN arrangement
// of tiles in a fixed-size backing array.
//
// Grid is a comparable value type: two grids with identical size and
// tile content compare equal with ==, which is what the search engines'
// visited sets rely on. All operations return fresh values; a Grid is
// never mutated in place.
type Grid struct {
	N     int8
	Cells [maxCells]Tile
}

// NewGrid builds a grid from tiles in row-major order.
func NewGrid(n int, tiles []Tile) (Grid, error) {
	if n < MinSize || n > MaxSize {
		return Grid{}, fmt.Errorf("grid size must be between %d and %d, got %d", MinSize, MaxSize, n)
	}
	if len(tiles) != n*n {
		return Grid{}, fmt.Errorf("grid size %d needs %d tiles, got %d", n, n*n, len(tiles))
	}
	g := Grid{N: int8(n)}
	copy(g.Cells[:], tiles)
	return g, nil
}

// Size returns the grid dimension N.
func (g Grid) Size() int { return int(g.N) }

// At returns the tile at row r, column c.
func (g Grid) At(r, c int) Tile {
	return g.Cells[r*int(g.N)+c]
}

// Swap identifies the action of exchanging the tiles at (R1,C1) and
// (R2,C2). It is a comparable value; the search engines treat it as an
// opaque edge label.
type Swap struct {
	R1, C1 int8
	R2, C2 int8
}

// Apply returns a fresh grid with the two tiles named by s exchanged.
// The receiver is unchanged.
func (g Grid) Apply(s Swap) Grid {
	n := int(g.N)
	i := int(s.R1)*n + int(s.C1)
	j := int(s.R2)*n + int(s.C2)
	out := g
	out.Cells[i], out.Cells[j] = out.Cells[j], out.Cells[i]
	return out
}
