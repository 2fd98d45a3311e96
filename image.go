package picocart

import (
	"image"
	"os"
	"path/filepath"

	"github.com/picocart/picocart/fault"
)

// ImageDecoder yields the tileset's RGBA samples for a tileset path.
type ImageDecoder interface {
	DecodeImage(path string) (image.Image, error)
}

// FileDecoder decodes the tileset image from disk through the stdlib
// image registry; register concrete formats by blank importing image/png
// and friends. Relative paths resolve against Base when set.
type FileDecoder struct {
	Base string
}

// DecodeImage implements ImageDecoder.
func (d FileDecoder) DecodeImage(path string) (image.Image, error) {
	if d.Base != "" && !filepath.IsAbs(path) {
		path = filepath.Join(d.Base, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &fault.ResourceLoad{Path: path, Err: err}
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, &fault.ResourceLoad{Path: path, Err: err}
	}
	return m, nil
}
