package picocart

import (
	"image"
	"io"

	"github.com/picocart/picocart/cart"
	"github.com/picocart/picocart/diag"
	"github.com/picocart/picocart/fault"
	"github.com/picocart/picocart/geom"
	"github.com/picocart/picocart/nibble"
	"github.com/picocart/picocart/palette"
	"github.com/picocart/picocart/project"
	"github.com/picocart/picocart/tilemap"
)

type decodeResult struct {
	image image.Image
	err   error
}

// decodeTileset is the pipeline's one suspension point: the decode runs
// on its own goroutine and delivers a single result.
func (c *Converter) decodeTileset(path string) <-chan decodeResult {
	out := make(chan decodeResult, 1)
	go func() {
		m, err := c.Decoder.DecodeImage(path)
		out <- decodeResult{image: m, err: err}
	}()
	return out
}

// Convert runs the pipeline over the project's first level and writes
// the cartridge document to w. Non-fatal conditions are returned as
// diagnostics alongside the result; any error aborts the run with
// nothing written.
func (c *Converter) Convert(p *project.Project, w io.Writer) ([]diag.Diagnostic, error) {
	rec := diag.NewRecorder(c.logger)

	if len(p.Levels) == 0 {
		return rec.Diagnostics(), fault.Configurationf("project has no levels")
	}
	level := p.Levels[0]

	tileset, err := p.ResolveTileset(level)
	if err != nil {
		return rec.Diagnostics(), err
	}

	pending := c.decodeTileset(tileset.Path)

	// The map clip is the console capacity against the level's own
	// extent; an oversized level clips to capacity with a diagnostic.
	cellsW := ceilDiv(level.Width, cart.CellPixels)
	cellsH := ceilDiv(level.Height, cart.CellPixels)
	if cellsW > cart.MapWidth || cellsH > cart.MapHeight {
		rec.Warnf(diag.CodeLevelClipped, "level is %dx%d cells, clipped to the %dx%d map",
			cellsW, cellsH, cart.MapWidth, cart.MapHeight)
	}
	mapClip, err := geom.Intersect(geom.XYWH(0, 0, cart.MapWidth, cart.MapHeight), geom.WH(cellsW, cellsH))
	if err != nil {
		return rec.Diagnostics(), err
	}
	sheetClip, err := geom.Intersect(geom.XYWH(0, 0, cart.SheetWidth, cart.SheetHeight), geom.Rect{})
	if err != nil {
		return rec.Diagnostics(), err
	}

	mapGrid, err := tilemap.Extract(placements(level), mapClip, sheetClip, rec)
	if err != nil {
		return rec.Diagnostics(), err
	}
	mapRows := nibble.Split(nibble.Trim(nibble.Encode(mapGrid.Flatten(0), 2, 0), cart.MapRowChars), cart.MapRowChars)

	res := <-pending
	if res.err != nil {
		return rec.Diagnostics(), res.err
	}

	b := res.image.Bounds()
	if b.Dx() != cart.GfxWidth || b.Dy() != cart.GfxHeight {
		rec.Warnf(diag.CodeImageClipped, "tileset image is %dx%d px, clipped against the %dx%d sheet",
			b.Dx(), b.Dy(), cart.GfxWidth, cart.GfxHeight)
	}
	pxClip, err := geom.Intersect(geom.XYWH(0, 0, cart.GfxWidth, cart.GfxHeight),
		geom.XYWH(b.Min.X, b.Min.Y, b.Dx(), b.Dy()))
	if err != nil {
		return rec.Diagnostics(), err
	}

	q := palette.Quantizer{Transparent: p.TransparentIndex(rec), Reduce: c.Reduce}
	gfxGrid := q.QuantizeRegion(res.image, pxClip, rec)
	gfxRows := nibble.Split(nibble.Trim(nibble.Encode(gfxGrid.Flatten(0), 1, 0), cart.GfxRowChars), cart.GfxRowChars)

	flagGrid := tilemap.EncodeFlags(sheetTags(tileset), sheetClip, cart.SheetWidth, cart.SheetHeight, rec)
	flagRows := nibble.Split(nibble.Trim(nibble.Encode(flagGrid.Flatten(0), 2, 0), cart.FlagRowChars), cart.FlagRowChars)

	gfxRows, mapRows, err = cart.Merge(gfxRows, mapRows, c.Policy)
	if err != nil {
		return rec.Diagnostics(), err
	}

	doc := cart.Cart{Script: c.Script, Gfx: gfxRows, Flags: flagRows, Map: mapRows}
	if err := cart.Write(w, doc); err != nil {
		return rec.Diagnostics(), err
	}
	return rec.Diagnostics(), nil
}

// placements normalizes the level's visible layers, topmost first, into
// the extractor's input. Entities contribute only through a tile decal.
func placements(level project.Level) [][]tilemap.Placement {
	out := make([][]tilemap.Placement, 0, len(level.Layers))
	for _, layer := range level.Layers {
		if !layer.Visible {
			continue
		}
		ps := make([]tilemap.Placement, 0, len(layer.Tiles)+len(layer.Entities))
		for _, t := range layer.Tiles {
			ps = append(ps, tilemap.Placement{
				Layer: layer.Name,
				X:     t.X, Y: t.Y,
				SrcX: t.SrcX, SrcY: t.SrcY,
				FlipX: t.FlipX, FlipY: t.FlipY, Rotation: t.Rotation,
			})
		}
		for _, e := range layer.Entities {
			if e.Tile == nil {
				continue
			}
			ps = append(ps, tilemap.Placement{
				Layer: layer.Name,
				X:     e.X, Y: e.Y,
				SrcX: e.Tile.SrcX, SrcY: e.Tile.SrcY,
				FlipX: e.Tile.FlipX, FlipY: e.Tile.FlipY, Rotation: e.Tile.Rotation,
			})
		}
		out = append(out, ps)
	}
	return out
}

func sheetTags(ts *project.Tileset) []tilemap.Tag {
	tags := make([]tilemap.Tag, 0, len(ts.Tags))
	for _, t := range ts.Tags {
		tags = append(tags, tilemap.Tag{Label: t.Label, Tiles: t.Tiles})
	}
	return tags
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
