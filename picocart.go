/*
Package picocart converts a parsed level-editor project into the text
cartridge format consumed by the PICO-8 virtual console.
*/
package picocart

import (
	"github.com/hashicorp/go-hclog"

	"github.com/picocart/picocart/cart"
)

// Converter drives the conversion pipeline. Construct a fresh Converter
// per run; it holds no state across runs but is not safe for concurrent
// use.
type Converter struct {
	// Policy reconciles graphics and map data over the shared storage
	// region. The zero value refuses conflicting carts.
	Policy cart.Policy

	// Reduce median-cuts oversized tileset palettes before matching.
	Reduce bool

	// Script is embedded verbatim as the cartridge's lua section.
	Script string

	// Decoder supplies the tileset pixels. Defaults to reading from
	// the filesystem.
	Decoder ImageDecoder

	logger hclog.Logger
}

// New returns a Converter logging through logger. A nil logger converts
// silently.
func New(logger hclog.Logger) *Converter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Converter{
		Decoder: FileDecoder{},
		logger:  logger,
	}
}
