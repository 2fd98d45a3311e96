package tilemap

import (
	"github.com/picocart/picocart/diag"
	"github.com/picocart/picocart/geom"
	"github.com/picocart/picocart/grid"
)

// MaxTags is the number of sprite flag bits the console stores.
const MaxTags = 8

// Tag groups sheet tiles under one flag bit; bit 0 is the first tag.
type Tag struct {
	Label string
	Tiles []int
}

// EncodeFlags ORs each tag's bit into the cells its tile ids occupy,
// over the full sheet extent. Tags beyond MaxTags are dropped with a
// diagnostic. Only the clip's far edges are checked: near-edge inclusion
// follows the sheet origin, so clips not anchored at (0,0) admit ids
// left of or above them.
func EncodeFlags(tags []Tag, clip geom.Region, sheetWidth, sheetHeight int, rec *diag.Recorder) *grid.Grid {
	if len(tags) > MaxTags {
		rec.Warnf(diag.CodeTagsTruncated, "%d tag(s) beyond the %d flag bits were dropped", len(tags)-MaxTags, MaxTags)
		tags = tags[:MaxTags]
	}
	out := grid.New(sheetWidth, sheetHeight)
	for bit, tag := range tags {
		for _, id := range tag.Tiles {
			if id < 0 {
				continue
			}
			cx, cy := id%sheetWidth, id/sheetWidth
			if cx >= clip.X2 || cy >= clip.Y2 {
				continue
			}
			cur, _ := out.At(cx, cy)
			out.Set(cx, cy, cur|1<<uint(bit))
		}
	}
	return out
}
