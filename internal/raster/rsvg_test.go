package raster

import (
	"errors"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mavwarf/mkicon/internal/icon"
)

func TestRSVGMissingBinary(t *testing.T) {
	r := RSVG{Bin: "mkicon-no-such-converter"}
	err := r.Available()
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Available() = %v, want ErrUnavailable", err)
	}
	if !strings.Contains(err.Error(), "mkicon-no-such-converter") {
		t.Errorf("error should name the binary, got: %v", err)
	}

	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")
	if err := r.Rasterize(filepath.Join(dir, "in.svg"), out, 48); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Rasterize() = %v, want ErrUnavailable", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written despite missing converter")
	}
}

func TestRSVGDefaultBin(t *testing.T) {
	if got := (RSVG{}).bin(); got != DefaultRSVGBin {
		t.Errorf("bin() = %q, want %q", got, DefaultRSVGBin)
	}
}

func TestRSVGRasterize(t *testing.T) {
	if _, err := exec.LookPath(DefaultRSVGBin); err != nil {
		t.Skip("rsvg-convert not installed, skipping conversion test")
	}

	dir := t.TempDir()
	svgPath := filepath.Join(dir, "icon.svg")
	data, _ := icon.SVG(96)
	os.WriteFile(svgPath, data, 0644)
	pngPath := filepath.Join(dir, "ic_launcher.png")

	if err := (RSVG{}).Rasterize(svgPath, pngPath, 96); err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 96 || cfg.Height != 96 {
		t.Errorf("png = %dx%d, want 96x96", cfg.Width, cfg.Height)
	}
}

func TestRSVGBadInput(t *testing.T) {
	if _, err := exec.LookPath(DefaultRSVGBin); err != nil {
		t.Skip("rsvg-convert not installed, skipping bad-input test")
	}
	err := (RSVG{}).Rasterize("/nonexistent/icon.svg", filepath.Join(t.TempDir(), "out.png"), 48)
	if err == nil {
		t.Fatal("expected error for nonexistent input file")
	}
}

func TestFitPNGRescales(t *testing.T) {
	p := filepath.Join(t.TempDir(), "odd.png")
	if err := writePNG(p, image.NewRGBA(image.Rect(0, 0, 10, 20))); err != nil {
		t.Fatal(err)
	}
	if err := fitPNG(p, 16); err != nil {
		t.Fatalf("fitPNG: %v", err)
	}
	f, _ := os.Open(p)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 16 || cfg.Height != 16 {
		t.Errorf("png = %dx%d, want 16x16", cfg.Width, cfg.Height)
	}
}

func TestFitPNGKeepsExactSize(t *testing.T) {
	p := filepath.Join(t.TempDir(), "exact.png")
	writePNG(p, image.NewRGBA(image.Rect(0, 0, 16, 16)))
	before, _ := os.Stat(p)
	if err := fitPNG(p, 16); err != nil {
		t.Fatalf("fitPNG: %v", err)
	}
	after, _ := os.Stat(p)
	if !os.SameFile(before, after) {
		t.Error("exact-size png was rewritten")
	}
}
