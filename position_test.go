package sandtrack

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPositionRoundTrip(t *testing.T) {
	pts := [][2]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{-1, 0},
		{0, -1},
		{0.3, -0.7},
		{-0.25, 0.125},
		{-0.5, -1e-12},
	}
	for _, pt := range pts {
		c := Cartesian(pt[0], pt[1])
		p := Polar(c.Rho(), c.Theta())
		diff(t, pt, [2]float64{p.X(), p.Y()}, cmpopts.EquateApprox(0, 1e-12))
		if p.Turns() != c.Turns() {
			t.Errorf("%v: got %d turns, want %d", pt, p.Turns(), c.Turns())
		}
	}
}

func TestPositionTurns(t *testing.T) {
	tests := []struct {
		theta float64
		turns int
		angle float64
	}{
		{0, 0, 0},
		{math.Pi, 0, math.Pi},
		{deg(181), 1, deg(-179)},
		{2.5 * math.Pi, 1, 0.5 * math.Pi},
		{-0.5 * math.Pi, 0, -0.5 * math.Pi},
		{-1.5 * math.Pi, -1, 0.5 * math.Pi},
	}
	for _, tt := range tests {
		p := Polar(1, tt.theta)
		if p.Turns() != tt.turns {
			t.Errorf("θ=%g: got %d turns, want %d", tt.theta, p.Turns(), tt.turns)
		}
		if math.Abs(p.Angle()-tt.angle) > 1e-12 {
			t.Errorf("θ=%g: got angle %g, want %g", tt.theta, p.Angle(), tt.angle)
		}
	}
}

func TestNegativeXAxis(t *testing.T) {
	p := Cartesian(-0.5, 0)
	if p.Theta() != math.Pi {
		t.Errorf("got θ=%g, want π", p.Theta())
	}
	if p.Turns() != 0 {
		t.Errorf("got %d turns, want 0", p.Turns())
	}
}

func TestFromDeltaXYCrossing(t *testing.T) {
	start := Polar(0.5, deg(179))
	target := Polar(0.5, deg(194))
	p := start.FromDeltaXY(start.DeltaX(target), start.DeltaY(target))
	if math.Abs(p.Theta()-deg(194)) > 1e-9 {
		t.Errorf("got θ=%g°, want 194°", p.Theta()*180/math.Pi)
	}
	if p.Turns() != start.Turns()+1 {
		t.Errorf("got %d turns, want %d", p.Turns(), start.Turns()+1)
	}

	// and back again
	q := p.FromDeltaXY(p.DeltaX(start), p.DeltaY(start))
	if math.Abs(q.Theta()-deg(179)) > 1e-9 {
		t.Errorf("got θ=%g°, want 179°", q.Theta()*180/math.Pi)
	}
	if q.Turns() != start.Turns() {
		t.Errorf("got %d turns, want %d", q.Turns(), start.Turns())
	}
}

func TestFromDeltaXYKeepsTurns(t *testing.T) {
	// A walk around the right half of the table, crossing the positive x
	// axis repeatedly but never the negative one.
	p := CartesianTurns(0.5, 0.5, 3)
	moves := []Point{
		{0, -1}, {0.2, 0}, {0, 1}, {-0.1, -0.3}, {0.1, -0.4}, {0, 0.5},
	}
	for _, m := range moves {
		p = p.Offset(m)
		if p.Turns() != 3 {
			t.Fatalf("%v: got %d turns, want 3", p, p.Turns())
		}
	}
}

func TestPositionDistance(t *testing.T) {
	a := Cartesian(0, 0)
	b := Cartesian(3, 4)
	if got := a.Distance(b); got != 5 {
		t.Errorf("got %g, want 5", got)
	}
	if got := a.AngleTo(Cartesian(0, 1)); got != math.Pi/2 {
		t.Errorf("got %g, want π/2", got)
	}
	// Winding does not affect distance.
	if got := Polar(1, 0).Distance(Polar(1, 4*math.Pi)); got > 1e-12 {
		t.Errorf("got %g, want 0", got)
	}
}

func TestPositionEqual(t *testing.T) {
	if Polar(1, 0).Equal(Polar(1, 2*math.Pi)) {
		t.Error("positions with different winding compare equal")
	}
	if !Cartesian(0.25, 0.5).Equal(Cartesian(0.25, 0.5)) {
		t.Error("identical positions compare unequal")
	}
}
