/*
Package cart implements the text cartridge format: its fixed geometry,
the reconciliation of graphics and map data over their shared storage
region, and the assembly of named sections into the final document.

The console stores one hexadecimal digit per graphics pixel and two per
map cell. The map's lower half and the sprite sheet's lower half are the
same bytes read at different granularities, which is where the overlap
policies come in.
*/
package cart

const (
	// Header and Version form the fixed two-line preamble.
	Header  = "pico-8 cartridge // http://www.pico-8.com"
	Version = "version 41"

	// Section markers, in emission order.
	MarkerScript = "__lua__"
	MarkerGfx    = "__gfx__"
	MarkerFlags  = "__gff__"
	MarkerMap    = "__map__"

	// CellPixels is the cell edge shared by map and sheet grids.
	CellPixels = 8

	// Map capacity in cells.
	MapWidth  = 128
	MapHeight = 64

	// Sprite sheet capacity, in cells and pixels.
	SheetWidth  = 16
	SheetHeight = 16
	GfxWidth    = SheetWidth * CellPixels
	GfxHeight   = SheetHeight * CellPixels

	// Row widths in hexadecimal digits.
	GfxRowChars  = GfxWidth      // one pixel row, one digit per pixel
	MapRowChars  = MapWidth * 2  // one cell row, two digits per cell
	FlagRowChars = GfxWidth * 2  // full sheet width, two digits per entry

	// SharedMapRow and SharedGfxRow mark where map and graphics
	// storage begin to alias: each map row past the boundary is two
	// graphics pixel rows.
	SharedMapRow = 32
	SharedGfxRow = 64
)
