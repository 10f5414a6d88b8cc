package puzzle

import (
	"fmt"
	"strings"
)

// Render draws the grid as box-drawn cells, one tile per cell with its
// four edge values:
//
//	╔═══╦═══╗
//	║╲1╱║╲4╱║
//	║2╳3║3╳6║
//	║╱5╲║╱2╲║
//	╠═══╬═══╣
//	║╲5╱║╲2╱║
//	║7╳1║1╳8║
//	║╱9╲║╱4╲║
//	╚═══╩═══╝
func Render(g Grid) string {
	n := g.Size()
	var b strings.Builder

	// top border
	b.WriteString("╔")
	for c := 0; c < n; c++ {
		b.WriteString("═══")
		if c < n-1 {
			b.WriteString("╦")
		} else {
			b.WriteString("╗\n")
		}
	}

	for r := 0; r < n; r++ {
		// tile tops
		b.WriteString("║")
		for c := 0; c < n; c++ {
			fmt.Fprintf(&b, "╲%d╱║", g.At(r, c).Top)
		}
		b.WriteString("\n")

		// tile left/right
		b.WriteString("║")
		for c := 0; c < n; c++ {
			t := g.At(r, c)
			fmt.Fprintf(&b, "%d╳%d║", t.Left, t.Right)
		}
		b.WriteString("\n")

		// tile bottoms
		b.WriteString("║")
		for c := 0; c < n; c++ {
			fmt.Fprintf(&b, "╱%d╲║", g.At(r, c).Bottom)
		}
		b.WriteString("\n")

		// row separator or bottom border
		if r < n-1 {
			b.WriteString("╠")
			for c := 0; c < n; c++ {
				b.WriteString("═══")
				if c < n-1 {
					b.WriteString("╬")
				} else {
					b.WriteString("╣\n")
				}
			}
		} else {
			b.WriteString("╚")
			for c := 0; c < n; c++ {
				b.WriteString("═══")
				if c < n-1 {
					b.WriteString("╩")
				} else {
					b.WriteString("╝\n")
				}
			}
		}
	}

	return b.String()
}
