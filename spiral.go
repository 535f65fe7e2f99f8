package sandtrack

import "math"

// ArithmeticSpiral is the arc of the spiral ρ = mθ + b that connects From
// and To. It is the only path the table can trace natively: both motors
// move at a constant speed ratio between two vertices.
//
// Theta is unwrapped, so the winding of From and To determines how many
// revolutions the spiral makes and in which direction.
//
// Two limits of the spiral need special treatment. When From and To have
// the same theta, the spiral degenerates to a radial straight line. When
// they have the same rho, it is an arc of a circle about the table center.
type ArithmeticSpiral struct {
	From Position
	To   Position
}

type spiralKind int

const (
	spiralPoint spiralKind = iota
	spiralRadial
	spiralCircle
	spiralGeneral
)

func (s ArithmeticSpiral) dRho() float64   { return s.To.rho - s.From.rho }
func (s ArithmeticSpiral) dTheta() float64 { return s.To.theta - s.From.theta }

func (s ArithmeticSpiral) kind() spiralKind {
	dr := math.Abs(s.dRho())
	dt := math.Abs(s.dTheta())
	switch {
	case dr < epsilon && dt < epsilon:
		return spiralPoint
	case dt < epsilon:
		return spiralRadial
	case dr < epsilon:
		return spiralCircle
	default:
		return spiralGeneral
	}
}

// Slope returns m, the change of rho per radian. It is infinite for radial
// lines.
func (s ArithmeticSpiral) Slope() float64 {
	dt := s.dTheta()
	if dt == 0 {
		return math.Inf(int(math.Copysign(1, s.dRho())))
	}
	return s.dRho() / dt
}

// Intercept returns b, the rho of the spiral at theta = 0.
func (s ArithmeticSpiral) Intercept() float64 {
	return s.From.rho - s.Slope()*s.From.theta
}

// RhoAt returns the rho of the spiral at theta.
func (s ArithmeticSpiral) RhoAt(theta float64) float64 {
	dt := s.dTheta()
	if dt == 0 {
		return s.From.rho
	}
	return s.From.rho + s.dRho()*(theta-s.From.theta)/dt
}

// ThetaAt returns the theta at which the spiral reaches rho. The result is
// NaN when the spiral is a circle.
func (s ArithmeticSpiral) ThetaAt(rho float64) float64 {
	dr := s.dRho()
	if dr == 0 {
		return math.NaN()
	}
	return s.From.theta + s.dTheta()*(rho-s.From.rho)/dr
}

// At returns the point of the spiral at theta.
func (s ArithmeticSpiral) At(theta float64) Position {
	return Polar(s.RhoAt(theta), theta)
}

// TangentAngle returns the direction of travel at theta, when moving
// towards increasing theta.
func (s ArithmeticSpiral) TangentAngle(theta float64) float64 {
	return theta + math.Atan2(s.RhoAt(theta), s.Slope())
}

// Length returns the arc length of the spiral, integrated numerically.
func (s ArithmeticSpiral) Length() float64 {
	switch s.kind() {
	case spiralPoint:
		return 0
	case spiralRadial:
		return math.Abs(s.dRho())
	}
	// ds/dθ = √(ρ² + m²)
	m := s.Slope()
	t0 := 0.5 * (s.From.theta + s.To.theta)
	dt := 0.5 * s.dTheta()
	var l float64
	for _, v := range gaussLegendreCoeffs16 {
		wi, xi := v[0], v[1]
		l += wi * math.Hypot(s.RhoAt(t0+xi*dt), m)
	}
	return math.Abs(l * dt)
}

func (s ArithmeticSpiral) Start() Position { return s.From }
func (s ArithmeticSpiral) End() Position   { return s.To }

// nearOriginStep is the angular step used where the spiral passes so close
// to the center that the angle between radial and tangent is undefined.
const nearOriginStep = 0.01

// maxShrink bounds the number of times a spiral step is shortened to keep
// its chord within the maximum point distance.
const maxShrink = 64

func (s ArithmeticSpiral) First(maxDist float64) Step {
	st := Step{Pos: s.From}
	switch s.kind() {
	case spiralPoint:
		st.Last = true
	case spiralRadial:
		st.n = segmentCount(math.Abs(s.dRho()), maxDist)
	default:
		st.T = s.From.theta
	}
	return st
}

func (s ArithmeticSpiral) Next(prev Step, maxDist float64) Step {
	if prev.Last {
		return prev
	}
	switch s.kind() {
	case spiralRadial:
		// Fixed rho increments along the radial line.
		i := int(prev.T) + 1
		if i >= prev.n {
			return Step{Pos: s.To, T: float64(prev.n), Last: true, n: prev.n}
		}
		rho := s.From.rho + s.dRho()*float64(i)/float64(prev.n)
		return Step{Pos: Polar(rho, s.From.theta), T: float64(i), n: prev.n}
	case spiralCircle:
		// Constant arc length per step.
		return s.advance(prev, maxDist/math.Abs(s.RhoAt(prev.T)), maxDist)
	default:
		return s.advance(prev, s.thetaStep(prev.T, maxDist), maxDist)
	}
}

// thetaStep returns the angle, in the direction of To, that advances one
// maximum point distance along the spiral from theta.
//
// The step is found by solving the triangle formed by the table center, the
// current point and the next point: two sides are the current rho and the
// step length, and the angle between them is the angle between the radial
// and the spiral's tangent.
func (s ArithmeticSpiral) thetaStep(theta, maxDist float64) float64 {
	m := s.Slope()
	rho := s.RhoAt(theta)
	slope := m / rho
	if math.Abs(rho) < epsilon || math.IsInf(slope, 0) || math.IsNaN(slope) {
		return min(nearOriginStep, maxDist/math.Abs(m))
	}
	sign := math.Copysign(1, s.dTheta())
	// Angle between the outward radial and the direction of travel.
	cosPsi := m * sign / math.Hypot(m, rho)
	d := maxDist
	// Law of cosines, with the angle at the current point being π − ψ.
	far := math.Sqrt(max(0, rho*rho+d*d+2*rho*d*cosPsi))
	if far < epsilon {
		return min(nearOriginStep, maxDist/math.Abs(m))
	}
	cos := (rho*rho + far*far - d*d) / (2 * rho * far)
	return math.Acos(max(-1, min(1, cos)))
}

// advance moves from prev towards To by dt radians, shortening the step
// until its chord is no longer than maxDist.
func (s ArithmeticSpiral) advance(prev Step, dt, maxDist float64) Step {
	remaining := math.Abs(s.To.theta - prev.T)
	if !(dt > 0) || dt >= remaining {
		dt = remaining
	}
	sign := math.Copysign(1, s.dTheta())
	end := dt == remaining
	next := s.To
	if !end {
		next = s.At(prev.T + sign*dt)
	}
	for range maxShrink {
		chord := prev.Pos.Distance(next)
		if chord <= maxDist {
			break
		}
		dt *= 0.9 * maxDist / chord
		end = false
		next = s.At(prev.T + sign*dt)
	}
	if end {
		return Step{Pos: s.To, T: s.To.theta, Last: true}
	}
	return Step{Pos: next, T: prev.T + sign*dt}
}

var gaussLegendreCoeffs16 = [...][2]float64{
	{0.1894506104550685, -0.0950125098376374},
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, -0.2816035507792589},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, -0.4580167776572274},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, -0.6178762444026438},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, -0.7554044083550030},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, -0.8656312023878318},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, -0.9445750230732326},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, -0.9894009349916499},
	{0.0271524594117541, 0.9894009349916499},
}
