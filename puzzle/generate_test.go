package puzzle

import (
	"math/rand"
	"testing"
)

func TestRandom(t *testing.T) {
	t.Run("rejects out-of-range sizes", func(t *testing.T) {
		for _, n := range []int{1, 5} {
			if _, _, err := Random(n, nil); err == nil {
				t.Errorf("expected error for size %d", n)
			}
		}
	})

	t.Run("goal is solved by construction", func(t *testing.T) {
		for n := MinSize; n <= MaxSize; n++ {
			rng := rand.New(rand.NewSource(int64(n)))
			_, goal, err := Random(n, rng)
			if err != nil {
				t.Fatalf("Random(%d) failed: %v", n, err)
			}
			p, err := New(n, goal)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if !p.IsGoal(goal) {
				t.Errorf("generated %dx%d goal does not pass the goal test", n, n)
			}
		}
	})

	t.Run("start holds the same tiles as the goal", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		start, goal, err := Random(3, rng)
		if err != nil {
			t.Fatalf("Random failed: %v", err)
		}

		count := make(map[Tile]int)
		for i := 0; i < 9; i++ {
			count[goal.Cells[i]]++
			count[start.Cells[i]]--
		}
		for tile, c := range count {
			if c != 0 {
				t.Errorf("tile %v count differs between start and goal by %d", tile, c)
			}
		}
	})

	t.Run("fixed seed reproduces the instance", func(t *testing.T) {
		start1, goal1, err := Random(3, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("Random failed: %v", err)
		}
		start2, goal2, err := Random(3, rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("Random failed: %v", err)
		}
		if start1 != start2 || goal1 != goal2 {
			t.Error("expected identical instances from the same seed")
		}
	})
}

func TestUnsolvable(t *testing.T) {
	t.Run("rejects out-of-range sizes", func(t *testing.T) {
		if _, err := Unsolvable(5); err == nil {
			t.Error("expected error for size 5")
		}
	})

	t.Run("no single arrangement is solved", func(t *testing.T) {
		g, err := Unsolvable(2)
		if err != nil {
			t.Fatalf("Unsolvable failed: %v", err)
		}
		p, err := New(2, g)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if p.IsGoal(g) {
			t.Error("the unsolvable grid passes the goal test")
		}
		for _, s := range p.Successors(g) {
			if p.IsGoal(s.State) {
				t.Errorf("swap %v solved the unsolvable grid", s.Action)
			}
		}
	})
}
