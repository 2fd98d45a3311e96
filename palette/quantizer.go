package palette

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/picocart/picocart/diag"
	"github.com/picocart/picocart/geom"
	"github.com/picocart/picocart/grid"
)

// Quantizer assigns palette indices to the pixels of a clipped image
// region.
type Quantizer struct {
	// Transparent is the index assigned to pixels with zero alpha.
	Transparent int

	// Reduce median-cuts a source with more than Size distinct colors
	// down to Size before nearest-matching, so dithered or true-color
	// art converges on stable indices.
	Reduce bool
}

// QuantizeRegion maps every pixel of m inside clip to a palette index,
// addressed relative to the clip origin. Pixels outside m's bounds stay
// unset and are filled with the caller's default when serialized.
func (q Quantizer) QuantizeRegion(m image.Image, clip geom.Region, rec *diag.Recorder) *grid.Grid {
	out := grid.New(clip.Width, clip.Height)
	if m == nil || clip.Width <= 0 || clip.Height <= 0 {
		return out
	}
	// Transparency is judged on the source image; reduction can fold
	// alpha-zero pixels into an opaque cluster.
	src := m
	if q.Reduce {
		src = reduceColors(m, rec)
	}
	b := m.Bounds()
	for y := clip.Y1; y < clip.Y2; y++ {
		for x := clip.X1; x < clip.X2; x++ {
			if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
				continue
			}
			idx := q.Transparent
			if _, _, _, a := m.At(x, y).RGBA(); a != 0 {
				r, g, bl, _ := src.At(x, y).RGBA()
				idx = Nearest(r, g, bl)
			}
			out.Set(x-clip.X1, y-clip.Y1, idx)
		}
	}
	return out
}

// reduceColors quantizes m down to at most Size colors when its palette
// is larger. Already-paletted images within the limit pass through.
func reduceColors(m image.Image, rec *diag.Recorder) image.Image {
	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= Size {
		return m
	}
	b := m.Bounds()
	mq := quantize.MedianCutQuantizer{}
	p := mq.Quantize(make(color.Palette, 0, Size), m)
	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)
	rec.Warnf(diag.CodePaletteReduced, "tileset colors reduced to %d before palette matching", len(p))
	return pm
}
