// Package mipmap writes launcher icons into Android density buckets.
package mipmap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Mavwarf/mkicon/internal/icon"
	"github.com/Mavwarf/mkicon/internal/paths"
	"github.com/Mavwarf/mkicon/internal/raster"
)

// ErrNoResDir is returned when the output root does not exist.
var ErrNoResDir = errors.New("resource directory not found")

// Bucket is a density tier and the square icon edge it uses.
type Bucket struct {
	Name string
	Size int
}

// Buckets is the fixed table of generated densities, smallest first.
var Buckets = []Bucket{
	{"mdpi", 48},
	{"hdpi", 72},
	{"xhdpi", 96},
	{"xxhdpi", 144},
	{"xxxhdpi", 192},
}

// Variant is one icon file written per bucket.
type Variant struct {
	Name string
	File string
}

// Variants share the same artwork; round launchers get their own file so
// the manifest can reference it.
var Variants = []Variant{
	{"regular", "ic_launcher.png"},
	{"round", "ic_launcher_round.png"},
}

// Outputs returns every file path Generate writes under root.
func Outputs(root string) []string {
	out := make([]string, 0, len(Buckets)*len(Variants))
	for _, b := range Buckets {
		for _, v := range Variants {
			out = append(out, filepath.Join(paths.MipmapDir(root, b.Name), v.File))
		}
	}
	return out
}

// Generate renders every bucket into root using r, printing one progress
// line per bucket to out. It stops at the first failure.
func Generate(root string, r raster.Rasterizer, out io.Writer) error {
	if !paths.IsDir(root) {
		return fmt.Errorf("%w: %s", ErrNoResDir, root)
	}
	if err := r.Available(); err != nil {
		return err
	}

	for _, b := range Buckets {
		if err := generateBucket(root, b, r); err != nil {
			return fmt.Errorf("%s: %w", b.Name, err)
		}
		fmt.Fprintf(out, "Generated %s icons: %dx%dpx\n", b.Name, b.Size, b.Size)
	}

	fmt.Fprintln(out, "Icon generation complete!")
	return nil
}

func generateBucket(root string, b Bucket, r raster.Rasterizer) error {
	dir := paths.MipmapDir(root, b.Name)
	if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
		return err
	}

	svgPath, err := writeTempSVG(b)
	if err != nil {
		return err
	}
	defer os.Remove(svgPath)

	for _, v := range Variants {
		if err := r.Rasterize(svgPath, filepath.Join(dir, v.File), b.Size); err != nil {
			return fmt.Errorf("%s icon: %w", v.Name, err)
		}
	}
	return nil
}

func writeTempSVG(b Bucket) (string, error) {
	f, err := os.CreateTemp("", paths.TempSVGPrefix+b.Name+"_*.svg")
	if err != nil {
		return "", fmt.Errorf("creating temp svg: %w", err)
	}
	if err := icon.WriteSVG(f, b.Size); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing temp svg: %w", err)
	}
	return f.Name(), nil
}
