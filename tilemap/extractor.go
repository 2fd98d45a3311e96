/*
Package tilemap projects layered editor placements onto the flat map and
flag grids of the cartridge. Coordinates arrive in pixels and are
addressed to 8×8 cells by floor division, so any pixel inside a cell
selects that cell.
*/
package tilemap

import (
	"github.com/picocart/picocart/diag"
	"github.com/picocart/picocart/fault"
	"github.com/picocart/picocart/geom"
	"github.com/picocart/picocart/grid"
)

const (
	// CellSize is the cell edge in pixels.
	CellSize = 8

	// SheetCellsPerRow is the sprite sheet width in cells; a sprite
	// index is row*SheetCellsPerRow+column.
	SheetCellsPerRow = 16
)

// Placement is one tile stamped at a pixel position, normalized from
// whichever layer type produced it.
type Placement struct {
	Layer      string
	X, Y       int // destination, px
	SrcX, SrcY int // sheet source, px
	FlipX      bool
	FlipY      bool
	Rotation   int // quarter turns
}

// Extract flattens layers into a map-cell → sprite-index grid, addressed
// relative to mapClip. Layers arrive topmost first; they are processed in
// reverse so later writes belong to visually higher layers, which
// therefore win a contested cell. Placements falling outside either clip
// are skipped and counted per axis as diagnostics.
func Extract(layers [][]Placement, mapClip, sheetClip geom.Region, rec *diag.Recorder) (*grid.Grid, error) {
	out := grid.New(mapClip.Width, mapClip.Height)
	offMap, offSheet := 0, 0
	for i := len(layers) - 1; i >= 0; i-- {
		for _, p := range layers[i] {
			if p.FlipX || p.FlipY || p.Rotation%4 != 0 {
				return nil, &fault.UnsupportedTransform{Layer: p.Layer, X: p.X, Y: p.Y}
			}
			dx, dy := floorDiv(p.X, CellSize), floorDiv(p.Y, CellSize)
			sx, sy := floorDiv(p.SrcX, CellSize), floorDiv(p.SrcY, CellSize)
			if !mapClip.Contains(dx, dy) {
				offMap++
				continue
			}
			if !sheetClip.Contains(sx, sy) {
				offSheet++
				continue
			}
			out.Set(dx-mapClip.X1, dy-mapClip.Y1, sy*SheetCellsPerRow+sx)
		}
	}
	if offMap > 0 {
		rec.Warnf(diag.CodeTileOffMap, "%d placement(s) outside the map bounds were skipped", offMap)
	}
	if offSheet > 0 {
		rec.Warnf(diag.CodeTileOffSheet, "%d placement(s) outside the sprite sheet were skipped", offSheet)
	}
	return out, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
