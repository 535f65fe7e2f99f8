// Package raster renders previews of sand table tracks.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/sandtrack"
)

// Options control the appearance of a preview.
type Options struct {
	// Size is the width and height of the image in pixels. The table fills
	// the image.
	Size int
	// Width is the width of the ball's trace in pixels.
	Width float64
	// MaxPointDistance is the spacing, in normalized units, at which the
	// spirals between vertices are flattened. Non-positive values select
	// the spacing of DefaultOptions.
	MaxPointDistance float64

	Sand  color.Gray
	Trace color.Gray
}

// DefaultOptions are suitable for an on-screen preview.
var DefaultOptions = Options{
	Size:             800,
	Width:            2,
	MaxPointDistance: 0.002,
	Sand:             color.Gray{Y: 0xe8},
	Trace:            color.Gray{Y: 0x40},
}

// Render draws the track through vertices. Consecutive vertices are joined
// by arithmetic spirals, which are flattened to straight segments and
// stroked.
func Render(vertices []sandtrack.Position, opts Options) *image.Gray {
	size := opts.Size
	dst := image.NewGray(image.Rect(0, 0, size, size))
	for i := range dst.Pix {
		dst.Pix[i] = opts.Sand.Y
	}
	if len(vertices) == 0 {
		return dst
	}

	r := vector.NewRasterizer(size, size)
	scale := float64(size) / 2
	toPixel := func(p sandtrack.Position) vec.Vec2 {
		return vec.Vec2{X: (p.X() + 1) * scale, Y: (1 - p.Y()) * scale}
	}
	half := opts.Width / 2
	maxDist := opts.MaxPointDistance
	if !(maxDist > 0) {
		maxDist = DefaultOptions.MaxPointDistance
	}

	prev := toPixel(vertices[0])
	addDot(r, prev, half)
	for i := 1; i < len(vertices); i++ {
		s := sandtrack.ArithmeticSpiral{From: vertices[i-1], To: vertices[i]}
		for p := range sandtrack.Positions(s, maxDist) {
			q := toPixel(p)
			addSegment(r, prev, q, half)
			prev = q
		}
	}

	r.Draw(dst, dst.Bounds(), image.NewUniform(opts.Trace), image.Point{})
	return dst
}

// addSegment adds the outline of the stroke from a to b, extended by half
// the stroke width at both ends so that consecutive segments overlap.
// All outlines have the same orientation, so their coverage accumulates.
func addSegment(r *vector.Rasterizer, a, b vec.Vec2, half float64) {
	d := b.Sub(a)
	length := d.Length()
	if length < 1e-9 {
		return
	}
	t := d.Mul(half / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	a = a.Sub(t)
	b = b.Add(t)
	quad(r, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addDot marks a single point with a square of the stroke width.
func addDot(r *vector.Rasterizer, p vec.Vec2, half float64) {
	t := vec.Vec2{X: half, Y: 0}
	n := vec.Vec2{X: 0, Y: half}
	quad(r, p.Sub(t).Add(n), p.Add(t).Add(n), p.Add(t).Sub(n), p.Sub(t).Sub(n))
}

func quad(r *vector.Rasterizer, p0, p1, p2, p3 vec.Vec2) {
	r.MoveTo(float32(p0.X), float32(p0.Y))
	r.LineTo(float32(p1.X), float32(p1.Y))
	r.LineTo(float32(p2.X), float32(p2.Y))
	r.LineTo(float32(p3.X), float32(p3.Y))
	r.ClosePath()
}

// WritePNG renders the track and encodes it as PNG.
func WritePNG(w io.Writer, vertices []sandtrack.Position, opts Options) error {
	return png.Encode(w, Render(vertices, opts))
}
