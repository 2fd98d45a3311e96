package project

import (
	"github.com/picocart/picocart/cart"
	"github.com/picocart/picocart/fault"
)

// ResolveTileset folds over the level's visible layers and returns the
// single tileset they reference. Layers without a tileset are skipped;
// a second, differing tileset is a configuration fault, as is a cell
// size other than the console's.
func (p *Project) ResolveTileset(lvl Level) (*Tileset, error) {
	var chosen *Tileset
	for _, layer := range lvl.Layers {
		if !layer.Visible || layer.Tileset == "" {
			continue
		}
		ts := p.tilesetByLabel(layer.Tileset)
		if ts == nil {
			return nil, fault.Configurationf("layer %q references unknown tileset %q", layer.Name, layer.Tileset)
		}
		switch {
		case chosen == nil:
			chosen = ts
		case chosen.Label != ts.Label:
			return nil, fault.Configurationf("layers reference tilesets %q and %q; one tileset per run", chosen.Label, ts.Label)
		}
	}
	if chosen == nil {
		return nil, fault.Configurationf("no visible layer references a tileset")
	}
	if chosen.TileWidth != cart.CellPixels || chosen.TileHeight != cart.CellPixels {
		return nil, fault.Configurationf("tileset %q cell size %dx%d; the console requires %dx%d",
			chosen.Label, chosen.TileWidth, chosen.TileHeight, cart.CellPixels, cart.CellPixels)
	}
	return chosen, nil
}

func (p *Project) tilesetByLabel(label string) *Tileset {
	for i := range p.Tilesets {
		if p.Tilesets[i].Label == label {
			return &p.Tilesets[i]
		}
	}
	return nil
}
