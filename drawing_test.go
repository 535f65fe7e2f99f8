package sandtrack

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDrawingStartsAtCenter(t *testing.T) {
	d := NewDrawing(DefaultConfig())
	vs := d.Vertices()
	if len(vs) != 1 || vs[0].Rho() != 0 {
		t.Fatalf("got %v, want the table center", vs)
	}
	if d.Position() != (Position{}) {
		t.Errorf("got position %v, want the table center", d.Position())
	}
}

func TestDrawingLineTo(t *testing.T) {
	d := NewDrawing(DefaultConfig())
	if err := d.LineTo(Cartesian(0, 0.5)); err != nil {
		t.Fatal(err)
	}
	vs := d.Vertices()
	if len(vs) != 2 {
		t.Fatalf("got %d vertices, want 2", len(vs))
	}
	// The center takes the direction of the first line.
	if vs[0].Rho() != 0 || vs[0].Theta() != math.Pi/2 {
		t.Errorf("got first vertex %v", vs[0])
	}
	if d.Position() != vs[1] {
		t.Errorf("position %v is not the last vertex %v", d.Position(), vs[1])
	}
	diff(t, [2]float64{0, 0.5}, [2]float64{d.Position().X(), d.Position().Y()}, cmpopts.EquateApprox(0, 1e-12))

	// Drawing to where we already are adds nothing.
	if err := d.LineTo(d.Local()); err != nil {
		t.Fatal(err)
	}
	if n := len(d.Vertices()); n != 2 {
		t.Errorf("got %d vertices, want 2", n)
	}
}

func TestDrawingTracksWinding(t *testing.T) {
	d := NewDrawing(DefaultConfig())
	// A square around the center, drawn counter-clockwise twice.
	corners := []Position{
		Cartesian(0.5, -0.5), Cartesian(0.5, 0.5), Cartesian(-0.5, 0.5), Cartesian(-0.5, -0.5),
	}
	for range 2 {
		for _, c := range corners {
			if err := d.LineTo(c); err != nil {
				t.Fatal(err)
			}
		}
	}
	end := d.Position()
	// Every lap crosses the negative x axis once, downwards.
	if end.Turns() != 2 {
		t.Errorf("got %d turns, want 2", end.Turns())
	}
	vs := d.Vertices()
	for i := 1; i < len(vs); i++ {
		if dt := vs[i].Theta() - vs[i-1].Theta(); dt < -1e-9 {
			t.Errorf("vertex %d turns backwards by %g", i, dt)
		}
	}
}

func TestDrawingTransform(t *testing.T) {
	d := NewDrawing(DefaultConfig())
	d.SetTransform(Rotate(math.Pi / 2))
	if err := d.LineTo(Cartesian(0.5, 0)); err != nil {
		t.Fatal(err)
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	diff(t, Pt(0, 0.5), d.Position().Point(), approx)
	diff(t, Pt(0.5, 0), d.Local().Point(), approx)

	// Relative points follow the heading.
	d.RotateTo(math.Pi / 2)
	diff(t, Pt(0.5, 0.1), Pt(0.1, 0).Abs(d).Point(), approx)
}

func TestDrawingArcTo(t *testing.T) {
	d := NewDrawing(DefaultConfig())
	if err := d.LineTo(Cartesian(0.5, 0)); err != nil {
		t.Fatal(err)
	}
	// A half circle around (0.3, 0) ends at (0.1, 0).
	if err := d.ArcTo(Pt(-0.2, 0), math.Pi); err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(0.1, 0), d.Position().Point(), cmpopts.EquateApprox(0, 1e-9))
}

func TestDrawingCurveAndSpiral(t *testing.T) {
	d := NewDrawing(DefaultConfig())
	if err := d.CurveTo(Pt(0.2, 0.6), Pt(0.6, -0.2), Cartesian(0.7, 0.1)); err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(0.7, 0.1), d.Position().Point(), cmpopts.EquateApprox(0, 1e-9))

	to := Polar(0.3, d.Position().Theta()+4*math.Pi)
	if err := d.SpiralTo(to); err != nil {
		t.Fatal(err)
	}
	if d.Position() != to {
		t.Errorf("got %v, want %v", d.Position(), to)
	}
}

func TestDrawingEraseTo(t *testing.T) {
	d := NewDrawing(DefaultConfig())
	if err := d.EraseTo(Polar(1, 0), 0.1); err != nil {
		t.Fatal(err)
	}
	p := d.Position()
	if p.Rho() != 1 || p.Turns() != 10 {
		t.Errorf("got %v, want ρ=1 after 10 turns", p)
	}
	if math.Abs(p.Theta()-20*math.Pi) > 1e-9 {
		t.Errorf("got θ=%g, want 20π", p.Theta())
	}
	if err := d.EraseTo(Polar(0, 0), 0); err == nil {
		t.Error("erasing with zero pitch succeeded")
	}
}

func TestDrawingMarkers(t *testing.T) {
	d := NewDrawing(DefaultConfig())
	if err := d.LineTo(Cartesian(0.3, 0.3)); err != nil {
		t.Fatal(err)
	}
	d.Mark("corner")
	if err := d.LineTo(Cartesian(-0.3, 0.3)); err != nil {
		t.Fatal(err)
	}
	p, ok := d.Marker("corner")
	if !ok {
		t.Fatal("marker not found")
	}
	diff(t, Pt(0.3, 0.3), p.Point(), cmpopts.EquateApprox(0, 1e-12))
	if _, ok := d.Marker("nothing"); ok {
		t.Error("found a marker that was never set")
	}
}

func TestDrawingReportsFitErrors(t *testing.T) {
	d := NewDrawing(DefaultConfig())
	d.tolerance = 0
	err := d.LineTo(Cartesian(0.5, 0.5))
	if !errors.Is(err, ErrTolerance) {
		t.Errorf("got %v, want %v", err, ErrTolerance)
	}
}

func TestDrawingInvalidSpacing(t *testing.T) {
	for _, maxDist := range []float64{0, -0.01, math.NaN()} {
		cfg := DefaultConfig()
		cfg.MaxPointDistance = maxDist
		d := NewDrawing(cfg)
		if err := d.SpiralTo(Polar(0.5, 2)); !errors.Is(err, ErrMaxPointDistance) {
			t.Errorf("spacing %v: got %v, want %v", maxDist, err, ErrMaxPointDistance)
		}
		if len(d.Vertices()) != 1 {
			t.Errorf("spacing %v: drew %v", maxDist, d.Vertices())
		}
	}
}

func TestDrawingReportsUnclassifiable(t *testing.T) {
	widenPieces(t)
	d := NewDrawing(DefaultConfig())
	d.pos = fullTurn.From
	d.vertices = []Position{fullTurn.From}
	d.tolerance = 0.001

	line := NewArbitraryLine([]Position{fullTurn.From, fullTurn.From, offAxis, fullTurn.To})
	err := d.DrawWith(line, Identity)
	var fe *FitError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want a *FitError", err)
	}
	if fe.Index != 2 || fe.Pattern != 0b010 {
		t.Errorf("got point %d and pattern %03b, want point 2 and pattern 010", fe.Index, fe.Pattern)
	}
	if msg := err.Error(); !strings.HasPrefix(msg, "drawing sandtrack.ArbitraryLine: sandtrack: ") {
		t.Errorf("unexpected message %q", msg)
	}
	diff(t, []Position{fullTurn.From}, d.Vertices())
}
