package sandtrack

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Drawing accumulates the vertices of a track.
//
// A drawing has a current position, which is where the next line starts,
// and a heading (its rotation) that relative helpers such as [Point.Abs]
// use. Lines are drawn in pattern space and mapped to the table by the
// drawing's transform.
//
// The vertex list starts at the table center. Every successful call to one
// of the drawing methods fits the line with arithmetic spirals and appends
// the resulting vertices.
//
// A Drawing is not safe for concurrent use.
type Drawing struct {
	maxDist   float64
	tolerance float64

	pos       Position
	rotation  float64
	transform Transform
	vertices  []Position
	markers   map[string]Position
}

// NewDrawing returns an empty drawing at the table center.
func NewDrawing(cfg Config) *Drawing {
	return &Drawing{
		maxDist:   cfg.MaxPointDistance,
		tolerance: cfg.Tolerance(),
		vertices:  []Position{{}},
	}
}

// Position returns the current position on the table.
func (d *Drawing) Position() Position { return d.pos }

// Local returns the current position in pattern space.
func (d *Drawing) Local() Position {
	return d.transform.Inverse().Apply(d.pos)
}

func (d *Drawing) Rotation() float64         { return d.rotation }
func (d *Drawing) MaxPointDistance() float64 { return d.maxDist }
func (d *Drawing) Tolerance() float64        { return d.tolerance }
func (d *Drawing) Transform() Transform      { return d.transform }

// SetTransform sets the transform from pattern space to the table.
func (d *Drawing) SetTransform(tr Transform) { d.transform = tr }

// RotateBy turns the heading by th radians.
func (d *Drawing) RotateBy(th float64) { d.rotation += th }

// RotateTo sets the heading to th radians.
func (d *Drawing) RotateTo(th float64) { d.rotation = th }

// Vertices returns a copy of the vertices drawn so far, starting with the
// table center.
func (d *Drawing) Vertices() []Position {
	return slices.Clone(d.vertices)
}

// Mark remembers the current position under name.
func (d *Drawing) Mark(name string) {
	if d.markers == nil {
		d.markers = make(map[string]Position)
	}
	d.markers[name] = d.pos
}

// Marker returns the position remembered under name, in pattern space.
func (d *Drawing) Marker(name string) (Position, bool) {
	p, ok := d.markers[name]
	if !ok {
		return Position{}, false
	}
	return d.transform.Inverse().Apply(p), true
}

// Draw draws l, mapped to the table by the drawing's transform.
func (d *Drawing) Draw(l Line) error {
	return d.DrawWith(l, d.transform)
}

// DrawWith draws l, mapped to the table by tr.
//
// If l does not start at the current position, a straight line connects
// the two. Lines that consist of a single point draw nothing.
func (d *Drawing) DrawWith(l Line, tr Transform) error {
	if !(d.maxDist > 0) {
		return fmt.Errorf("drawing %T: %w", l, ErrMaxPointDistance)
	}
	pts := Points(l, d.maxDist)
	if len(pts) < 2 {
		return nil
	}
	pts = tr.ApplyAll(d.pos, pts)

	// Keep the winding of the line relative to its own start, but make
	// the start agree with a straight move from the current position.
	start := d.pos.moveTo(pts[0].x, pts[0].y)
	if k := start.turns - pts[0].turns; k != 0 {
		pts = unwind(pts, k)
	}
	if d.pos.Distance(start) > epsilon {
		conn := Points(StraightLine{From: d.pos, To: start}, d.maxDist)
		pts = append(conn[:len(conn)-1], pts...)
	} else {
		pts[0] = d.pos
	}

	res, err := Fit(pts, d.tolerance)
	if err != nil {
		return fmt.Errorf("drawing %T: %w", l, err)
	}
	if len(res) < 2 {
		return nil
	}
	// The center has no direction. The first line decides the initial
	// one; later lines through the center turn in place.
	if len(d.vertices) == 1 {
		d.vertices[0] = res[0]
	}
	if d.vertices[len(d.vertices)-1] == res[0] {
		res = res[1:]
	}
	d.vertices = append(d.vertices, res...)
	d.pos = res[len(res)-1]
	return nil
}

// unwind adds k revolutions to every position.
func unwind(pts []Position, k int) []Position {
	out := make([]Position, len(pts))
	for i, p := range pts {
		out[i] = Polar(p.rho, p.theta+float64(k)*2*math.Pi)
	}
	return out
}

// LineTo draws a straight line from the current position to p, in pattern
// space.
func (d *Drawing) LineTo(p Position) error {
	return d.Draw(StraightLine{From: d.Local(), To: p})
}

// ArcTo draws a circular arc around center, sweeping by sweep radians.
// Positive sweeps are counter-clockwise. The center is relative to the
// current position and heading, like [Point.Abs].
func (d *Drawing) ArcTo(center Point, sweep float64) error {
	local := d.Local()
	c := local.Point().Add(center.Rotate(d.rotation))
	r := local.Point().Sub(c)
	start := r.Angle()
	return d.Draw(CircularArc{
		Center:     c,
		Radius:     r.Length(),
		StartAngle: start,
		EndAngle:   start + sweep,
		From:       local,
	})
}

// CurveTo draws a cubic Bézier curve from the current position to p with
// the control points c1 and c2, all in pattern space.
func (d *Drawing) CurveTo(c1, c2 Point, p Position) error {
	return d.Draw(CubicBezierCurve{From: d.Local(), C1: c1, C2: c2, To: p})
}

// SpiralTo draws the arithmetic spiral from the current position to p, in
// pattern space. The winding of p selects the number of revolutions.
func (d *Drawing) SpiralTo(p Position) error {
	return d.Draw(ArithmeticSpiral{From: d.Local(), To: p})
}

// EraseTo spirals counter-clockwise from the current position to the radius
// and direction of target, ignoring the transform. It makes enough
// revolutions that consecutive turns are at most pitch apart, so that the
// sand in between is wiped.
func (d *Drawing) EraseTo(target Position, pitch float64) error {
	if !(pitch > 0) {
		return errors.New("sandtrack: erase pitch must be positive")
	}
	from := d.pos
	n := math.Ceil(math.Abs(target.rho-from.rho) / pitch)
	diff := math.Mod(target.Angle()-from.Angle(), 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	to := Polar(target.rho, from.theta+n*2*math.Pi+diff)
	return d.DrawWith(ArithmeticSpiral{From: from, To: to}, Identity)
}
