/*
Package project models the parsed level-editor project at the converter's
input boundary. Everything here is a plain value object; the pipeline
never mutates a loaded project.
*/
package project

// Project is one editor project: shared custom values, the tileset
// definitions, and the levels built from them.
type Project struct {
	Name     string            `json:"name"`
	Values   map[string]string `json:"values,omitempty"`
	Tilesets []Tileset         `json:"tilesets"`
	Levels   []Level           `json:"levels"`
}

// Tileset describes one sheet image cut into fixed-size cells.
type Tileset struct {
	Label      string `json:"label"`
	Path       string `json:"path"`
	TileWidth  int    `json:"tileWidth"`
	TileHeight int    `json:"tileHeight"`
	Tags       []Tag  `json:"tags,omitempty"`
}

// Tag names a set of tileset tile ids.
type Tag struct {
	Label string `json:"label"`
	Tiles []int  `json:"tiles"`
}

// Level is one editor level. Layers are stored in stacking order,
// topmost first.
type Level struct {
	Name   string  `json:"name"`
	Width  int     `json:"width"`  // px
	Height int     `json:"height"` // px
	Layers []Layer `json:"layers"`
}

// Layer kinds.
const (
	KindTiles     = "tiles"
	KindAutoTiles = "autotiles"
	KindEntities  = "entities"
)

// Layer is one level layer of either tile placements or entities.
type Layer struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Visible  bool     `json:"visible"`
	Tileset  string   `json:"tileset,omitempty"`
	Tiles    []Tile   `json:"tiles,omitempty"`
	Entities []Entity `json:"entities,omitempty"`
}

// Tile is one placement: a destination pixel position and the sheet
// pixel it samples, plus the editor's transform flags.
type Tile struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	SrcX     int  `json:"srcX"`
	SrcY     int  `json:"srcY"`
	FlipX    bool `json:"flipX,omitempty"`
	FlipY    bool `json:"flipY,omitempty"`
	Rotation int  `json:"rotation,omitempty"`
}

// Entity is a positioned object; it contributes to the map only through
// an optional tile decal.
type Entity struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Tile *Tile  `json:"tile,omitempty"`
}
