package sandtrack

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezierEval(t *testing.T) {
	c := CubicBezierCurve{From: Cartesian(0, 0), C1: Pt(0, 1), C2: Pt(1, 1), To: Cartesian(1, 0)}
	diff(t, Pt(0.5, 0.75), c.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(0, 0), c.Eval(0))
	diff(t, Pt(1, 0), c.Eval(1))
}

func TestCubicBezierWinding(t *testing.T) {
	// Around the center, across the negative x axis, from the second
	// quadrant into the third.
	c := CubicBezierCurve{
		From: Cartesian(0.5, 0.5),
		C1:   Pt(-0.5, 1),
		C2:   Pt(-1, -0.5),
		To:   Cartesian(0, -0.5),
	}
	end := c.End()
	if end.Turns() != 1 {
		t.Errorf("got %d turns at the end, want 1", end.Turns())
	}
	diff(t, [2]float64{0, -0.5}, [2]float64{end.X(), end.Y()})
	if want := 1.5 * math.Pi; math.Abs(end.Theta()-want) > 1e-9 {
		t.Errorf("got end theta %v, want %v", end.Theta(), want)
	}

	pts := Points(c, 0.01)
	diff(t, end, pts[len(pts)-1])
}

func TestCubicBezierSamples(t *testing.T) {
	c := CubicBezierCurve{From: Cartesian(-0.5, 0), C1: Pt(-0.5, 0.5), C2: Pt(0.5, 0.5), To: Cartesian(0.5, 0)}
	spacing := func(n int) float64 {
		var d float64
		for i := 1; i <= n; i++ {
			d = max(d, c.Eval(float64(i)/float64(n)).Sub(c.Eval(float64(i-1)/float64(n))).Length())
		}
		return d
	}
	for _, maxDist := range []float64{0.1, 0.01, 0.001} {
		t.Run(fmt.Sprintf("%g", maxDist), func(t *testing.T) {
			n := c.samples(maxDist)
			if got := spacing(n); got > maxDist {
				t.Errorf("got spacing %v with %d samples, want at most %v", got, n, maxDist)
			}
			if got := spacing(n / 2); got <= maxDist {
				t.Errorf("%d samples would have been enough", n/2)
			}
		})
	}
}

func TestCubicBezierDegenerate(t *testing.T) {
	p := Cartesian(0.2, 0.3)
	c := CubicBezierCurve{From: p, C1: p.Point(), C2: p.Point(), To: p}
	if pts := Points(c, 0.01); len(pts) != 1 {
		t.Errorf("got %d points, want 1", len(pts))
	}
}
