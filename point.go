package sandtrack

import (
	"fmt"
	"math"
)

// Point is a displacement relative to some other location. Unlike
// [Position], it has no notion of winding. Points are used to compose
// shapes before anchoring them with [Point.Abs] or [Position.Offset].
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PolarPt returns the displacement of length r in direction angle.
func PolarPt(r, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: r * cos, Y: r * sin}
}

func (pt Point) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", pt.X, pt.Y)
}

// Add returns pt + o.
func (pt Point) Add(o Point) Point {
	return Point{X: pt.X + o.X, Y: pt.Y + o.Y}
}

// Sub returns pt − o.
func (pt Point) Sub(o Point) Point {
	return Point{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Scale returns pt multiplied by f.
func (pt Point) Scale(f float64) Point {
	return Point{X: pt.X * f, Y: pt.Y * f}
}

// Rotate rotates pt about the origin by th radians. Positive angles rotate
// the positive x axis into the positive y axis.
func (pt Point) Rotate(th float64) Point {
	sin, cos := math.Sincos(th)
	return Point{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// FlipX mirrors pt across the y axis.
func (pt Point) FlipX() Point {
	return Point{X: -pt.X, Y: pt.Y}
}

// FlipY mirrors pt across the x axis.
func (pt Point) FlipY() Point {
	return Point{X: pt.X, Y: -pt.Y}
}

// Negate mirrors pt through the origin.
func (pt Point) Negate() Point {
	return Point{X: -pt.X, Y: -pt.Y}
}

// Reflect mirrors pt across the line through the origin in direction angle.
func (pt Point) Reflect(angle float64) Point {
	sin, cos := math.Sincos(2 * angle)
	return Point{
		X: pt.X*cos + pt.Y*sin,
		Y: pt.X*sin - pt.Y*cos,
	}
}

// Length returns the magnitude of the displacement.
func (pt Point) Length() float64 {
	return math.Hypot(pt.X, pt.Y)
}

// Angle returns the direction of the displacement, atan2(y, x).
func (pt Point) Angle() float64 {
	return math.Atan2(pt.Y, pt.X)
}

// Dot returns the dot product of pt and o.
func (pt Point) Dot(o Point) float64 {
	return pt.X*o.X + pt.Y*o.Y
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Add(o.Sub(pt).Scale(t))
}

// Abs anchors pt at the drawing's current position, in the drawing's
// pattern space, interpreting pt relative to the drawing's rotation.
func (pt Point) Abs(d *Drawing) Position {
	return d.Local().Offset(pt.Rotate(d.Rotation()))
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
