// Package icon builds the launcher icon artwork as SVG markup.
//
// The glyph is laid out on a 48×48 grid (the mdpi launcher size) and wrapped
// in a scale(x,y) group, so every requested size gets the same geometry.
package icon

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// BaseSize is the edge length of the grid the artwork is drawn on.
const BaseSize = 48

const (
	ColorBackground = "#1A1A1A"
	ColorAccent     = "#FF6B35"
	ColorMark       = "#FFFFFF"
)

// ErrInvalidSize is returned for sizes below one pixel.
var ErrInvalidSize = errors.New("icon size must be positive")

// Scale returns the factor that maps the base grid onto size pixels.
func Scale(size int) float64 {
	return float64(size) / BaseSize
}

// SVG returns the complete SVG document for a square icon of size pixels.
func SVG(size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, size); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSVG writes the SVG document for a square icon of size pixels to w.
// It returns the first write error, since svgo discards them.
func WriteSVG(w io.Writer, size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Startview(size, size, 0, 0, size, size)
	// oksvg only understands the two-argument scale form.
	s := Scale(size)
	canvas.ScaleXY(s, s)
	draw(canvas)
	canvas.Gend()
	canvas.End()
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

func fill(c string) string { return `fill="` + c + `"` }

func draw(c *svg.SVG) {
	c.Rect(0, 0, BaseSize, BaseSize, fill(ColorBackground))

	// Diagonal wash over the lower-left half.
	c.Polygon([]int{0, BaseSize, 0}, []int{0, BaseSize, BaseSize},
		fill(ColorAccent), `fill-opacity="0.2"`)

	const mid = BaseSize / 2
	c.Circle(mid, mid, 16, fill(ColorAccent))
	c.Circle(mid, mid, 12, fill(ColorBackground))

	// Crosshair
	c.Rect(mid-2, 16, 4, 16, fill(ColorMark))
	c.Rect(16, mid-2, 16, 4, fill(ColorMark))
	c.Circle(mid, mid, 2, fill(ColorAccent))

	for _, m := range cornerMarks {
		c.Rect(m.x, m.y, m.w, m.h, fill(ColorMark))
	}

	for _, x := range brandDots {
		c.Circle(x, 40, 1, fill(ColorAccent))
	}
}

type mark struct{ x, y, w, h int }

// cornerMarks are the L-shaped ticks at the four corners of the reticle.
var cornerMarks = []mark{
	{18, 18, 2, 1}, {18, 18, 1, 2}, // top-left
	{28, 18, 2, 1}, {29, 18, 1, 2}, // top-right
	{18, 28, 1, 2}, {18, 29, 2, 1}, // bottom-left
	{29, 28, 1, 2}, {28, 29, 2, 1}, // bottom-right
}

var brandDots = []int{20, 22, 24, 26, 28}
