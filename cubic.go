package sandtrack

// maxBezierSamples bounds the adaptive flattening of [CubicBezierCurve].
const maxBezierSamples = 1 << 20

// CubicBezierCurve is a cubic Bézier curve from From to To with the control
// points C1 and C2, all in table coordinates.
//
// Like [StraightLine], only the Cartesian location of To is used; the
// winding along the curve follows from From.
type CubicBezierCurve struct {
	From Position
	C1   Point
	C2   Point
	To   Position
}

// Eval evaluates the curve at parameter t ∈ [0, 1].
func (c CubicBezierCurve) Eval(t float64) Point {
	mt := 1.0 - t
	a := c.From.Point().Scale(mt * mt * mt)
	b := c.C1.Scale(mt * mt * 3.0)
	cc := c.C2.Scale(mt * 3.0)
	d := c.To.Point()
	return a.Add(b.Add(cc.Add(d.Scale(t)).Scale(t)).Scale(t))
}

func (c CubicBezierCurve) Start() Position { return c.From }

// End returns the end of the curve, with the winding accumulated along it.
func (c CubicBezierCurve) End() Position {
	var last Position
	for p := range Positions(c, c.probeDist()) {
		last = p
	}
	return last
}

// probeDist returns a sample spacing fine enough to follow the winding of
// the curve: a sixteenth of its control polygon.
func (c CubicBezierCurve) probeDist() float64 {
	p0, p3 := c.From.Point(), c.To.Point()
	l := c.C1.Sub(p0).Length() + c.C2.Sub(c.C1).Length() + p3.Sub(c.C2).Length()
	if l == 0 {
		return 1
	}
	return l / 16
}

// samples returns the number of equal parameter steps needed so that all
// consecutive samples are at most maxDist apart. The count starts at one and
// doubles until the condition holds.
func (c CubicBezierCurve) samples(maxDist float64) int {
	n := 1
	for n < maxBezierSamples {
		ok := true
		prev := c.Eval(0)
		for i := 1; i <= n; i++ {
			p := c.Eval(float64(i) / float64(n))
			if p.Sub(prev).Length() > maxDist {
				ok = false
				break
			}
			prev = p
		}
		if ok {
			break
		}
		n *= 2
	}
	return n
}

func (c CubicBezierCurve) First(maxDist float64) Step {
	s := Step{Pos: c.From}
	if c.From.Point() == c.To.Point() && c.C1 == c.From.Point() && c.C2 == c.From.Point() {
		s.Last = true
		return s
	}
	s.n = c.samples(maxDist)
	return s
}

func (c CubicBezierCurve) Next(prev Step, maxDist float64) Step {
	if prev.Last {
		return prev
	}
	i := int(prev.T) + 1
	last := i >= prev.n
	var p Point
	if last {
		p = c.To.Point()
	} else {
		p = c.Eval(float64(i) / float64(prev.n))
	}
	return Step{Pos: prev.Pos.moveTo(p.X, p.Y), T: float64(i), Last: last, n: prev.n}
}
