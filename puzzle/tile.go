// Package puzzle implements the 4-sided domino tile puzzle: an NxN grid
// of tiles, each carrying a value on its four edges, solved when every
// pair of neighboring tiles agrees on their shared edge. The only action
// is swapping two tiles.
//
// The package provides the search.Problem implementation for the grid,
// random instance generation, and a textual renderer. It holds no search
// logic itself.
package puzzle

// Tile is a 4-sided domino carrying one value per edge.
//
// Tiles are immutable values; edge values are small positive integers
// (1-9 for generated instances).
type Tile struct {
	Top    uint8
	Right  uint8
	Bottom uint8
	Left   uint8
}

// Above reports whether t placed directly above other matches on the
// shared edge.
func (t Tile) Above(other Tile) bool { return t.Bottom == other.Top }

// Under reports whether t placed directly under other matches on the
// shared edge.
func (t Tile) Under(other Tile) bool { return t.Top == other.Bottom }

// LeftOf reports whether t placed directly left of other matches on the
// shared edge.
func (t Tile) LeftOf(other Tile) bool { return t.Right == other.Left }

// RightOf reports whether t placed directly right of other matches on
// the shared edge.
func (t Tile) RightOf(other Tile) bool { return t.Left == other.Right }
