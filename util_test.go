package sandtrack

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func deg(d float64) float64 { return d * math.Pi / 180 }

// xy flattens positions into (x, y) pairs for comparison.
func xy(pts []Position) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X(), p.Y()}
	}
	return out
}

// densify samples the spirals of a vertex chain.
func densify(chain []Position, maxDist float64) []Position {
	var out []Position
	for i := 1; i < len(chain); i++ {
		pts := Points(ArithmeticSpiral{From: chain[i-1], To: chain[i]}, maxDist)
		if i > 1 {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	return out
}
