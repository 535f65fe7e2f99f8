package sandtrack

import "math"

// CircularArc is an arc of the circle with the given center and radius,
// from StartAngle to EndAngle. The sweep may exceed a full revolution and
// is negative for clockwise arcs.
//
// From anchors the winding of the arc: its first point is reached from From
// by a straight move. Usually From is the arc's start itself. The zero
// value anchors at the table center.
type CircularArc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	From       Position
}

// Sweep returns the signed angle covered by the arc.
func (a CircularArc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// Length returns the arc length.
func (a CircularArc) Length() float64 {
	return math.Abs(a.Radius * a.Sweep())
}

func (a CircularArc) pointAt(angle float64) Point {
	return a.Center.Add(PolarPt(a.Radius, angle))
}

func (a CircularArc) Start() Position {
	p := a.pointAt(a.StartAngle)
	return a.From.moveTo(p.X, p.Y)
}

// End returns the end of the arc, with the winding accumulated along it.
func (a CircularArc) End() Position {
	probe := a.Radius * endProbeStep
	if !(probe > 0) {
		return a.Start()
	}
	var last Position
	for p := range Positions(a, probe) {
		last = p
	}
	return last
}

// endProbeStep is the angular resolution used to follow the winding of an
// arc in [CircularArc.End].
const endProbeStep = math.Pi / 16

func (a CircularArc) First(maxDist float64) Step {
	s := Step{Pos: a.Start(), T: a.StartAngle}
	if a.Length() < epsilon {
		s.Last = true
		return s
	}
	s.n = segmentCount(a.Length(), maxDist)
	return s
}

// Next advances by a fixed angular increment. Once the remaining angle is
// within a tenth of an increment, the exact end angle is used, so that
// rounding never overshoots the arc.
func (a CircularArc) Next(prev Step, maxDist float64) Step {
	if prev.Last {
		return prev
	}
	inc := a.Sweep() / float64(prev.n)
	angle := prev.T + inc
	last := math.Abs(a.EndAngle-angle) <= 0.1*math.Abs(inc)
	if last {
		angle = a.EndAngle
	}
	p := a.pointAt(angle)
	return Step{Pos: prev.Pos.moveTo(p.X, p.Y), T: angle, Last: last, n: prev.n}
}
