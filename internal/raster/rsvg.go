package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strconv"

	"golang.org/x/image/draw"
)

// DefaultRSVGBin is the librsvg command-line converter.
const DefaultRSVGBin = "rsvg-convert"

// RSVG rasterizes by shelling out to rsvg-convert.
type RSVG struct {
	Bin string // defaults to DefaultRSVGBin
}

func (r RSVG) Name() string { return NameRSVG }

func (r RSVG) bin() string {
	if r.Bin == "" {
		return DefaultRSVGBin
	}
	return r.Bin
}

// Available returns an error wrapping ErrUnavailable if the converter is
// not found on PATH.
func (r RSVG) Available() error {
	if _, err := exec.LookPath(r.bin()); err != nil {
		return fmt.Errorf("%w: %s not found on PATH: %v", ErrUnavailable, r.bin(), err)
	}
	return nil
}

func (r RSVG) Rasterize(svgPath, pngPath string, size int) error {
	if err := r.Available(); err != nil {
		return err
	}
	n := strconv.Itoa(size)
	cmd := exec.Command(r.bin(), "-w", n, "-h", n, "-f", "png", "-o", pngPath, svgPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s convert: %w\n%s", r.bin(), err, out)
	}
	return fitPNG(pngPath, size)
}

// fitPNG rescales the PNG at path to exactly size×size if the converter
// produced anything else.
func fitPNG(path string, size int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	src, err := png.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return nil
	}
	return writePNG(path, resize(src, size))
}

func resize(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)
	return dst
}
