package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picocart/picocart/diag"
	"github.com/picocart/picocart/geom"
)

func sheetRegion(t *testing.T) geom.Region {
	t.Helper()
	clip, err := geom.Intersect(geom.XYWH(0, 0, 16, 16), geom.Rect{})
	require.NoError(t, err)
	return clip
}

func TestEncodeFlagsEmpty(t *testing.T) {
	g := EncodeFlags(nil, sheetRegion(t), 16, 16, diag.NewRecorder(nil))
	for _, v := range g.Flatten(0) {
		assert.Zero(t, v)
	}
	assert.Equal(t, 0, g.Len())
}

func TestEncodeFlagsCombinesBits(t *testing.T) {
	tags := []Tag{
		{Label: "solid", Tiles: []int{17}},
		{Label: "hazard", Tiles: []int{2}},
		{Label: "water", Tiles: []int{3}},
		{Label: "ladder", Tiles: []int{17}},
	}
	g := EncodeFlags(tags, sheetRegion(t), 16, 16, diag.NewRecorder(nil))

	// Tile 17 carries bits 0 and 3: 0b1001.
	v, ok := g.At(1, 1)
	require.True(t, ok)
	assert.Equal(t, 9, v)

	v, _ = g.At(2, 0)
	assert.Equal(t, 2, v)
	v, _ = g.At(3, 0)
	assert.Equal(t, 4, v)
}

func TestEncodeFlagsTruncatesBeyondEight(t *testing.T) {
	tags := make([]Tag, 10)
	for i := range tags {
		tags[i] = Tag{Tiles: []int{i}}
	}
	rec := diag.NewRecorder(nil)
	g := EncodeFlags(tags, sheetRegion(t), 16, 16, rec)

	assert.True(t, rec.Has(diag.CodeTagsTruncated))
	_, ok := g.At(8, 0)
	assert.False(t, ok, "ninth tag must not land")
	v, _ := g.At(7, 0)
	assert.Equal(t, 128, v)
}

func TestEncodeFlagsUpperBoundOnly(t *testing.T) {
	// Clip narrower than the sheet: ids past the far edge drop, ids at
	// or before the near edge stay.
	clip, err := geom.Intersect(geom.XYWH(0, 0, 16, 16), geom.WH(2, 1))
	require.NoError(t, err)
	rec := diag.NewRecorder(nil)
	g := EncodeFlags([]Tag{{Tiles: []int{0, 1, 2, 16}}}, clip, 16, 16, rec)

	_, in := g.At(0, 0)
	assert.True(t, in)
	_, in = g.At(1, 0)
	assert.True(t, in)
	_, out := g.At(2, 0)
	assert.False(t, out, "past the clip's right edge")
	_, out = g.At(0, 1)
	assert.False(t, out, "past the clip's bottom edge")
}
