package sandtrack

import (
	"fmt"
	"math"
)

// Position is an absolute location on the table.
//
// A position is stored in both polar and Cartesian form. Theta is unwrapped:
// it may exceed ±π, in which case Turns counts the completed revolutions,
// such that Theta == Turns*2π + Angle with Angle in (−π, π]. Two positions
// at the same Cartesian location but with different winding are different
// positions, because the winding determines which way the device travels.
//
// Rho is nominally in [0, 1], with 1 at the edge of the table, but it is not
// clamped, so that intermediate computations may leave the table.
//
// The zero value is the center of the table.
type Position struct {
	rho   float64
	theta float64
	x     float64
	y     float64
	turns int
}

// Polar returns the position at radius rho and unwrapped angle theta.
func Polar(rho, theta float64) Position {
	sin, cos := math.Sincos(theta)
	return Position{
		rho:   rho,
		theta: theta,
		x:     rho * cos,
		y:     rho * sin,
		turns: turnsOf(theta),
	}
}

// Cartesian returns the position (x, y) without any completed revolutions.
func Cartesian(x, y float64) Position {
	return CartesianTurns(x, y, 0)
}

// CartesianTurns returns the position (x, y) after the given number of
// completed revolutions.
func CartesianTurns(x, y float64, turns int) Position {
	return Position{
		rho:   math.Hypot(x, y),
		theta: float64(turns)*2*math.Pi + angleOf(x, y),
		x:     x,
		y:     y,
		turns: turns,
	}
}

// angleOf is atan2 with the branch cut assigned to the upper half plane, so
// that the negative x axis always has angle π.
func angleOf(x, y float64) float64 {
	if y == 0 && x < 0 {
		return math.Pi
	}
	return math.Atan2(y, x)
}

// turnsOf returns the winding count of an unwrapped angle, the integer k
// with theta − k·2π in (−π, π].
func turnsOf(theta float64) int {
	k := math.Ceil((theta - math.Pi) / (2 * math.Pi))
	// Correct for rounding next to the branch cut.
	switch a := theta - k*2*math.Pi; {
	case a <= -math.Pi:
		k--
	case a > math.Pi:
		k++
	}
	return int(k)
}

func (p Position) Rho() float64   { return p.rho }
func (p Position) Theta() float64 { return p.theta }
func (p Position) X() float64     { return p.x }
func (p Position) Y() float64     { return p.y }
func (p Position) Turns() int     { return p.turns }

// Angle returns theta without the completed revolutions, in (−π, π].
func (p Position) Angle() float64 {
	return p.theta - float64(p.turns)*2*math.Pi
}

// Point returns the position as a displacement from the table center.
func (p Position) Point() Point {
	return Point{X: p.x, Y: p.y}
}

// DeltaX returns o.X() − p.X().
func (p Position) DeltaX(o Position) float64 { return o.x - p.x }

// DeltaY returns o.Y() − p.Y().
func (p Position) DeltaY(o Position) float64 { return o.y - p.y }

// AngleTo returns the direction of the vector from p to o.
func (p Position) AngleTo(o Position) float64 {
	return math.Atan2(o.y-p.y, o.x-p.x)
}

// Distance returns the euclidean distance between two positions.
func (p Position) Distance(o Position) float64 {
	return math.Hypot(o.x-p.x, o.y-p.y)
}

// FromDeltaXY returns the position reached by moving in a straight line from
// p by (dx, dy).
//
// The winding count changes when the move crosses the negative x axis:
// crossing from y ≥ 0 into y < 0 (increasing angle through π) increments
// it, the reverse crossing decrements it. For example, a move from 179° to
// what atan2 reports as −166° arrives at theta = 194° with one more turn.
func (p Position) FromDeltaXY(dx, dy float64) Position {
	return p.moveTo(p.x+dx, p.y+dy)
}

// moveTo is like FromDeltaXY but takes the absolute destination, avoiding
// the rounding of p.x + (x − p.x).
func (p Position) moveTo(x, y float64) Position {
	return CartesianTurns(x, y, p.turns+branchCrossing(p.x, p.y, x, y))
}

// Offset returns p moved by the displacement d. It is equivalent to
// p.FromDeltaXY(d.X, d.Y).
func (p Position) Offset(d Point) Position {
	return p.FromDeltaXY(d.X, d.Y)
}

// branchCrossing reports how the straight move from (x0, y0) to (x1, y1)
// crosses the negative x axis: +1 from above to below, −1 from below to
// above, 0 otherwise.
func branchCrossing(x0, y0, x1, y1 float64) int {
	above0 := y0 >= 0
	above1 := y1 >= 0
	if above0 == above1 {
		return 0
	}
	// x coordinate where the move meets y = 0
	x := x0 + (x1-x0)*(-y0)/(y1-y0)
	if !(x < 0) {
		return 0
	}
	if above0 {
		return 1
	}
	return -1
}

// Equal reports whether p and o are the same position, including winding.
// It is equivalent to p == o.
func (p Position) Equal(o Position) bool {
	return p == o
}

// IsNaN reports whether any coordinate of p is NaN.
func (p Position) IsNaN() bool {
	return math.IsNaN(p.rho) || math.IsNaN(p.theta)
}

func (p Position) String() string {
	return fmt.Sprintf("(ρ=%g, θ=%g, turns=%d)", p.rho, p.theta, p.turns)
}
