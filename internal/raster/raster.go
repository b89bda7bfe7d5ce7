// Package raster turns SVG files into square PNG images.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/Mavwarf/mkicon/internal/paths"
)

var (
	// ErrUnavailable means the rasterizer's backing tool cannot be used.
	ErrUnavailable = errors.New("rasterizer unavailable")
	// ErrUnknownRasterizer is returned by New for unrecognised names.
	ErrUnknownRasterizer = errors.New("unknown rasterizer")
)

const (
	NameBuiltin = "builtin"
	NameRSVG    = "rsvg"
)

// Rasterizer converts an SVG file into a size×size PNG at pngPath,
// overwriting any existing file.
type Rasterizer interface {
	Name() string
	// Available reports whether the rasterizer can run at all. Callers
	// check it before touching the filesystem.
	Available() error
	Rasterize(svgPath, pngPath string, size int) error
}

// Names lists the values accepted by New.
func Names() []string {
	return []string{NameBuiltin, NameRSVG}
}

// New returns the rasterizer registered under name. An empty name selects
// the builtin one.
func New(name string) (Rasterizer, error) {
	switch name {
	case "", NameBuiltin:
		return Builtin{}, nil
	case NameRSVG:
		return RSVG{}, nil
	}
	return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownRasterizer, name, Names())
}

// writePNG encodes img and writes it to path atomically.
func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
