package sandtrack

import "math"

// Transform is a rigid transform: a rotation about the table center by
// Rotation radians, followed by a translation by Offset.
//
// The convention for rotation is that a positive angle rotates the positive
// x axis into the positive y axis, which increases theta.
//
// The zero value is the identity transform.
type Transform struct {
	Rotation float64
	Offset   Point
}

// Identity is the identity transform.
var Identity = Transform{}

// Rotate creates a transform representing rotation by th radians.
func Rotate(th float64) Transform {
	return Transform{Rotation: th}
}

// Translate creates a transform representing translation by v.
func Translate(v Point) Transform {
	return Transform{Offset: v}
}

// IsIdentity reports whether tr leaves every point unchanged.
func (tr Transform) IsIdentity() bool {
	return tr.Rotation == 0 && tr.Offset == (Point{})
}

// Then returns the transform that applies tr, followed by o.
//
// Equivalent to "o * tr".
func (tr Transform) Then(o Transform) Transform {
	return Transform{
		Rotation: tr.Rotation + o.Rotation,
		Offset:   tr.Offset.Rotate(o.Rotation).Add(o.Offset),
	}
}

// ThenRotate creates tr followed by a rotation of th.
func (tr Transform) ThenRotate(th float64) Transform {
	return tr.Then(Rotate(th))
}

// ThenTranslate creates tr followed by a translation by v.
func (tr Transform) ThenTranslate(v Point) Transform {
	return tr.Then(Translate(v))
}

// Inverse returns the transform that undoes tr.
func (tr Transform) Inverse() Transform {
	return Transform{
		Rotation: -tr.Rotation,
		Offset:   tr.Offset.Rotate(-tr.Rotation).Negate(),
	}
}

// ApplyPoint transforms a point.
func (tr Transform) ApplyPoint(pt Point) Point {
	return pt.Rotate(tr.Rotation).Add(tr.Offset)
}

// Apply transforms a position.
//
// The rotation is applied in polar form and keeps the winding of p. The
// translation then moves the rotated position in a straight line, counting
// any crossing of the negative x axis like [Position.FromDeltaXY].
func (tr Transform) Apply(p Position) Position {
	if tr.IsIdentity() {
		return p
	}
	r := p
	if tr.Rotation != 0 {
		r = Polar(p.rho, p.theta+tr.Rotation)
	}
	if tr.Offset == (Point{}) {
		return r
	}
	return r.Offset(tr.Offset)
}

// ApplyAll transforms a sequence of positions that describes a continuous
// path starting at (or next to) anchor.
//
// The winding of the result is derived from the path itself: the first
// point is reached from anchor by a straight move, and every following
// point from its predecessor. For the identity transform the positions are
// returned unchanged.
func (tr Transform) ApplyAll(anchor Position, pts []Position) []Position {
	if tr.IsIdentity() {
		return pts
	}
	out := make([]Position, len(pts))
	prev := anchor
	for i, p := range pts {
		q := tr.ApplyPoint(p.Point())
		prev = prev.moveTo(q.X, q.Y)
		out[i] = prev
	}
	return out
}

// normalizeAngle maps th to (−π, π].
func normalizeAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th <= -math.Pi {
		th += 2 * math.Pi
	} else if th > math.Pi {
		th -= 2 * math.Pi
	}
	return th
}
