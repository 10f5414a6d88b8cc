package puzzle

import "testing"

func TestTileAdjacency(t *testing.T) {
	upper := Tile{Top: 1, Right: 2, Bottom: 3, Left: 4}
	lower := Tile{Top: 3, Right: 6, Bottom: 7, Left: 8}
	right := Tile{Top: 5, Right: 6, Bottom: 7, Left: 2}

	t.Run("vertical match", func(t *testing.T) {
		if !upper.Above(lower) {
			t.Error("expected upper.Above(lower)")
		}
		if !lower.Under(upper) {
			t.Error("expected lower.Under(upper)")
		}
		if upper.Above(right) {
			t.Error("bottom 3 must not match top 5")
		}
	})

	t.Run("horizontal match", func(t *testing.T) {
		if !upper.LeftOf(right) {
			t.Error("expected upper.LeftOf(right)")
		}
		if !right.RightOf(upper) {
			t.Error("expected right.RightOf(upper)")
		}
		if upper.LeftOf(lower) {
			t.Error("right 2 must not match left 8")
		}
	})
}
