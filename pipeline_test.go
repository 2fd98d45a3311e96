package picocart

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picocart/picocart/cart"
	"github.com/picocart/picocart/diag"
	"github.com/picocart/picocart/fault"
	"github.com/picocart/picocart/palette"
	"github.com/picocart/picocart/project"
)

type stubDecoder struct {
	img image.Image
}

func (d stubDecoder) DecodeImage(string) (image.Image, error) {
	return d.img, nil
}

// sheetImage builds a full-size tileset with a single red pixel at (1,0)
// inside sprite 0.
func sheetImage() image.Image {
	m := image.NewRGBA(image.Rect(0, 0, cart.GfxWidth, cart.GfxHeight))
	for y := 0; y < cart.GfxHeight; y++ {
		for x := 0; x < cart.GfxWidth; x++ {
			m.Set(x, y, palette.Reference[0])
		}
	}
	m.Set(1, 0, color.RGBA{255, 0, 77, 255}) // index 8
	return m
}

func oneTileProject(tile project.Tile, levelW, levelH int) *project.Project {
	return &project.Project{
		Name: "demo",
		Tilesets: []project.Tileset{
			{Label: "main", Path: "sheet.png", TileWidth: 8, TileHeight: 8},
		},
		Levels: []project.Level{{
			Name:   "one",
			Width:  levelW,
			Height: levelH,
			Layers: []project.Layer{{
				Name:    "fg",
				Kind:    project.KindTiles,
				Visible: true,
				Tileset: "main",
				Tiles:   []project.Tile{tile},
			}},
		}},
	}
}

// sections picks apart the emitted document by marker line.
func sections(doc string) map[string][]string {
	out := make(map[string][]string)
	var current string
	for _, line := range strings.Split(strings.TrimSuffix(doc, "\n"), "\n") {
		if strings.HasPrefix(line, "__") {
			current = line
			out[current] = nil
			continue
		}
		if current != "" {
			out[current] = append(out[current], line)
		}
	}
	return out
}

func TestConvertSingleTile(t *testing.T) {
	conv := New(nil)
	conv.Decoder = stubDecoder{img: sheetImage()}

	var buf bytes.Buffer
	_, err := conv.Convert(oneTileProject(project.Tile{X: 0, Y: 0, SrcX: 0, SrcY: 0}, 8, 8), &buf)
	require.NoError(t, err)

	doc := buf.String()
	assert.True(t, strings.HasPrefix(doc, cart.Header+"\n"+cart.Version+"\n"))

	s := sections(doc)

	// The one-cell map survives as a single padded row for sprite 0.
	require.Len(t, s["__map__"], 1)
	assert.Equal(t, "00", s["__map__"][0][:2])
	assert.Len(t, s["__map__"][0], cart.MapRowChars)

	// Graphics carry only the sprite's pixel data; the all-default tail
	// trims away.
	require.Len(t, s["__gfx__"], 1)
	assert.Equal(t, "08", s["__gfx__"][0][:2])
	assert.Len(t, s["__gfx__"][0], cart.GfxRowChars)

	// No tags, no flags section.
	_, ok := s["__gff__"]
	assert.False(t, ok)
}

func TestConvertNonZeroSprite(t *testing.T) {
	conv := New(nil)
	conv.Decoder = stubDecoder{img: sheetImage()}

	var buf bytes.Buffer
	_, err := conv.Convert(oneTileProject(project.Tile{X: 0, Y: 0, SrcX: 8, SrcY: 8}, 8, 8), &buf)
	require.NoError(t, err)

	s := sections(buf.String())
	require.NotEmpty(t, s["__map__"])
	// Sprite at sheet cell (1,1) is index 17.
	assert.Equal(t, "11", s["__map__"][0][:2])
}

func TestConvertEmitsFlags(t *testing.T) {
	p := oneTileProject(project.Tile{}, 8, 8)
	p.Tilesets[0].Tags = []project.Tag{
		{Label: "solid", Tiles: []int{0}},
		{Label: "skip", Tiles: nil},
		{Label: "both", Tiles: []int{0}},
	}

	conv := New(nil)
	conv.Decoder = stubDecoder{img: sheetImage()}

	var buf bytes.Buffer
	_, err := conv.Convert(p, &buf)
	require.NoError(t, err)

	s := sections(buf.String())
	require.Len(t, s["__gff__"], 1)
	// Bits 0 and 2 on sprite 0: 0b101.
	assert.Equal(t, "05", s["__gff__"][0][:2])
	assert.Len(t, s["__gff__"][0], cart.FlagRowChars)
}

func TestConvertClipsOversizedLevel(t *testing.T) {
	p := oneTileProject(project.Tile{X: 0, Y: 0, SrcX: 8, SrcY: 0}, 2048, 64)
	p.Levels[0].Layers[0].Tiles = append(p.Levels[0].Layers[0].Tiles,
		project.Tile{X: 1032, Y: 0, SrcX: 8, SrcY: 0}) // past the map capacity

	conv := New(nil)
	conv.Decoder = stubDecoder{img: sheetImage()}

	var buf bytes.Buffer
	diags, err := conv.Convert(p, &buf)
	require.NoError(t, err, "clipping must never fail the run")

	codes := make(map[string]bool)
	for _, d := range diags {
		codes[d.Code] = true
	}
	assert.True(t, codes[diag.CodeLevelClipped])
	assert.True(t, codes[diag.CodeTileOffMap])

	s := sections(buf.String())
	require.NotEmpty(t, s["__map__"])
	// The surviving placement packs at the clipped capacity width.
	assert.Equal(t, "01", s["__map__"][0][:2])
}

func TestConvertEmbedsScript(t *testing.T) {
	conv := New(nil)
	conv.Decoder = stubDecoder{img: sheetImage()}
	conv.Script = "function _draw()\n map()\nend\n"

	var buf bytes.Buffer
	_, err := conv.Convert(oneTileProject(project.Tile{}, 8, 8), &buf)
	require.NoError(t, err)

	s := sections(buf.String())
	assert.Equal(t, []string{"function _draw()", " map()", "end"}, s["__lua__"])
}

func TestConvertSmallTilesetImage(t *testing.T) {
	// A 64x8 tileset is clipped, not rejected.
	small := image.NewRGBA(image.Rect(0, 0, 64, 8))
	small.Set(0, 0, color.RGBA{255, 241, 232, 255}) // white, index 7

	conv := New(nil)
	conv.Decoder = stubDecoder{img: small}

	var buf bytes.Buffer
	diags, err := conv.Convert(oneTileProject(project.Tile{}, 8, 8), &buf)
	require.NoError(t, err)

	codes := make(map[string]bool)
	for _, d := range diags {
		codes[d.Code] = true
	}
	assert.True(t, codes[diag.CodeImageClipped])

	s := sections(buf.String())
	require.NotEmpty(t, s["__gfx__"])
	assert.Equal(t, "7", s["__gfx__"][0][:1])
}

func TestConvertTransparentField(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, cart.GfxWidth, cart.GfxHeight))
	m.Set(0, 0, color.RGBA{0, 0, 0, 0}) // fully transparent

	p := oneTileProject(project.Tile{}, 8, 8)
	p.Values = map[string]string{"transparent": "15"}

	conv := New(nil)
	conv.Decoder = stubDecoder{img: m}

	var buf bytes.Buffer
	_, err := conv.Convert(p, &buf)
	require.NoError(t, err)

	s := sections(buf.String())
	require.NotEmpty(t, s["__gfx__"])
	assert.Equal(t, "f", s["__gfx__"][0][:1])
}

func TestConvertRejectsFlippedTiles(t *testing.T) {
	conv := New(nil)
	conv.Decoder = stubDecoder{img: sheetImage()}

	p := oneTileProject(project.Tile{FlipX: true}, 8, 8)
	var buf bytes.Buffer
	_, err := conv.Convert(p, &buf)
	require.Error(t, err)
	var ut *fault.UnsupportedTransform
	assert.ErrorAs(t, err, &ut)
	assert.Zero(t, buf.Len(), "nothing written on failure")
}

func TestConvertNoLevels(t *testing.T) {
	conv := New(nil)
	_, err := conv.Convert(&project.Project{}, &bytes.Buffer{})
	var cfg *fault.Configuration
	assert.ErrorAs(t, err, &cfg)
}
