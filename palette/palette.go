/*
Package palette maps RGBA samples onto the console's fixed 16-color
palette. Every stored pixel is one of the 16 reference colors or the
caller's transparent index; there is no partial alpha.
*/
package palette

import "image/color"

// Size is the number of reference colors.
const Size = 16

// Reference is the console palette in index order.
var Reference = [Size]color.RGBA{
	{0, 0, 0, 255},       // black
	{29, 43, 83, 255},    // dark blue
	{126, 37, 83, 255},   // dark purple
	{0, 135, 81, 255},    // dark green
	{171, 82, 54, 255},   // brown
	{95, 87, 79, 255},    // dark gray
	{194, 195, 199, 255}, // light gray
	{255, 241, 232, 255}, // white
	{255, 0, 77, 255},    // red
	{255, 163, 0, 255},   // orange
	{255, 236, 39, 255},  // yellow
	{0, 228, 54, 255},    // green
	{41, 173, 255, 255},  // blue
	{131, 118, 156, 255}, // indigo
	{255, 119, 168, 255}, // pink
	{255, 204, 170, 255}, // peach
}

// Copied from color.sqDiff
func sqDiff(x, y uint32) uint32 {
	d := x - y
	return (d * d) >> 2
}

// Nearest returns the reference index with the smallest squared RGB
// distance to the sample. A tie keeps the earliest palette entry. The
// channels are 16-bit as returned by color.Color.RGBA.
func Nearest(r, g, b uint32) int {
	best := 0
	bestSum := uint32(1<<32 - 1)
	for i, c := range Reference {
		cr, cg, cb, _ := c.RGBA()
		sum := sqDiff(r, cr) + sqDiff(g, cg) + sqDiff(b, cb)
		if sum < bestSum {
			bestSum, best = sum, i
		}
	}
	return best
}
