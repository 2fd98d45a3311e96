/*
Package grid provides a sparse integer grid where key presence tracks
whether a cell was ever written. Serialization fills unset cells with an
explicit default exactly once, so "zero" and "never assigned" stay
distinct until that point.
*/
package grid

// Grid is a sparse width×height grid of integers.
type Grid struct {
	width, height int
	cells         map[int]int
}

// New returns an empty grid of the given dimensions.
func New(width, height int) *Grid {
	return &Grid{width: width, height: height, cells: make(map[int]int)}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells holding a value.
func (g *Grid) Len() int { return len(g.cells) }

// Set assigns v to the cell (x, y). Out-of-range coordinates are ignored;
// callers clip before writing.
func (g *Grid) Set(x, y, v int) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = v
}

// At returns the value at (x, y) and whether it was ever set.
func (g *Grid) At(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, false
	}
	v, ok := g.cells[y*g.width+x]
	return v, ok
}

// Flatten returns the grid in row-major order with unset cells replaced
// by def.
func (g *Grid) Flatten(def int) []int {
	out := make([]int, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			v, ok := g.cells[y*g.width+x]
			if !ok {
				v = def
			}
			out = append(out, v)
		}
	}
	return out
}
