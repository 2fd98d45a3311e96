/*
Package geom implements the partially-bounded rectangle clipping used by
every region-bounded stage of the converter. A Rect may leave any field
unset; intersection resolves each dimension from whichever operand bounds
it, and fails when neither does.
*/
package geom

import "github.com/picocart/picocart/fault"

// OptInt is an integer that may be left unset, deferring to the other
// operand during intersection.
type OptInt struct {
	Value int
	Set   bool
}

// Int returns a set OptInt.
func Int(v int) OptInt {
	return OptInt{Value: v, Set: true}
}

// Rect is a partially specified rectangle in some integer grid space.
type Rect struct {
	X, Y, Width, Height OptInt
}

// XYWH returns a fully specified Rect.
func XYWH(x, y, w, h int) Rect {
	return Rect{X: Int(x), Y: Int(y), Width: Int(w), Height: Int(h)}
}

// WH returns a Rect bounding only the extent, leaving the origin to the
// other intersection operand.
func WH(w, h int) Rect {
	return Rect{Width: Int(w), Height: Int(h)}
}

// Region is a fully resolved rectangle.
type Region struct {
	X1, Y1, X2, Y2, Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X1 && y >= r.Y1 && x < r.X2 && y < r.Y2
}

// Intersect clips a against b. Each of x, y, width and height must be
// bounded by at least one operand; a dimension unbounded on both sides is
// a configuration fault. A Width or Height of zero or less means the
// operands do not overlap.
func Intersect(a, b Rect) (Region, error) {
	x1, err := lower(a.X, b.X, "x")
	if err != nil {
		return Region{}, err
	}
	y1, err := lower(a.Y, b.Y, "y")
	if err != nil {
		return Region{}, err
	}
	x2, err := upper(a.X, a.Width, b.X, b.Width, x1, "width")
	if err != nil {
		return Region{}, err
	}
	y2, err := upper(a.Y, a.Height, b.Y, b.Height, y1, "height")
	if err != nil {
		return Region{}, err
	}
	return Region{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: x2 - x1, Height: y2 - y1}, nil
}

func lower(a, b OptInt, dim string) (int, error) {
	switch {
	case a.Set && b.Set:
		if b.Value > a.Value {
			return b.Value, nil
		}
		return a.Value, nil
	case a.Set:
		return a.Value, nil
	case b.Set:
		return b.Value, nil
	}
	return 0, fault.Configurationf("intersection %s unbounded on both operands", dim)
}

// upper resolves the far edge. An operand missing its origin borrows the
// resolved near edge.
func upper(ax, aw, bx, bw OptInt, near int, dim string) (int, error) {
	edge, found := 0, false
	for _, side := range [2]struct{ x, w OptInt }{{ax, aw}, {bx, bw}} {
		if !side.w.Set {
			continue
		}
		x := near
		if side.x.Set {
			x = side.x.Value
		}
		if e := x + side.w.Value; !found || e < edge {
			edge, found = e, true
		}
	}
	if !found {
		return 0, fault.Configurationf("intersection %s unbounded on both operands", dim)
	}
	return edge, nil
}
