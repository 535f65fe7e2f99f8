package sandtrack

// StraightLine is a straight line segment in Cartesian space.
//
// Only the Cartesian location of To is used. The winding of the end point
// follows from the straight move away from From, so that the line never
// has to travel around the table to reach its end.
type StraightLine struct {
	From Position
	To   Position
}

// Length returns the length of the line.
func (l StraightLine) Length() float64 {
	return l.From.Distance(l.To)
}

func (l StraightLine) Start() Position { return l.From }

func (l StraightLine) End() Position {
	return l.From.moveTo(l.To.x, l.To.y)
}

func (l StraightLine) First(maxDist float64) Step {
	if l.Length() == 0 {
		return Step{Pos: l.From, Last: true}
	}
	return Step{Pos: l.From, n: segmentCount(l.Length(), maxDist)}
}

// Next returns the point i+1 of n equal steps. Every point is computed from
// From directly rather than by accumulating steps, to avoid drift.
func (l StraightLine) Next(prev Step, maxDist float64) Step {
	if prev.Last {
		return prev
	}
	i := int(prev.T) + 1
	if i >= prev.n {
		return Step{Pos: l.End(), T: float64(prev.n), Last: true, n: prev.n}
	}
	f := float64(i) / float64(prev.n)
	x := l.From.x + f*(l.To.x-l.From.x)
	y := l.From.y + f*(l.To.y-l.From.y)
	return Step{Pos: l.From.moveTo(x, y), T: float64(i), n: prev.n}
}

// Nearest returns the squared distance from pt to the closest point of the
// line, and the parameter t ∈ [0, 1] of that point.
func (l StraightLine) Nearest(pt Point) (distSq, t float64) {
	p0 := l.From.Point()
	d := l.To.Point().Sub(p0)
	dotp := d.Dot(pt.Sub(p0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		v := pt.Sub(p0)
		return v.Dot(v), 0.0
	} else if dotp >= dSquared {
		v := pt.Sub(l.To.Point())
		return v.Dot(v), 1.0
	} else {
		t := dotp / dSquared
		v := pt.Sub(p0.Lerp(l.To.Point(), t))
		return v.Dot(v), t
	}
}
