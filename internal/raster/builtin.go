package raster

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Builtin rasterizes in-process with oksvg and rasterx. It has no
// external dependencies and is always available.
type Builtin struct{}

func (Builtin) Name() string { return NameBuiltin }

func (Builtin) Available() error { return nil }

func (Builtin) Rasterize(svgPath, pngPath string, size int) error {
	data, err := os.ReadFile(svgPath)
	if err != nil {
		return fmt.Errorf("reading svg: %w", err)
	}
	img, err := Render(bytes.NewReader(data), size)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", svgPath, err)
	}
	return writePNG(pngPath, img)
}

// Render parses an SVG document and draws it stretched to a size×size
// RGBA image.
func Render(r io.Reader, size int) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("invalid size %d", size)
	}
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}
