package sandtrack

import "math"

// MaxSubdivisions is the number of subdivision steps spent looking for the
// closest approach of a spiral to a single point. A point that has not been
// found within tolerance after that many steps is treated as not fitting.
//
// The budget is a known approximation: a segment rejected this way may
// still fit, and will simply be shortened by [Fit].
const MaxSubdivisions = 200

// maxPieceAngle is the largest theta span searched as one piece. Within a
// piece, the distance from a point to the spiral has at most one interior
// minimum, which is what the lookup in thirds relies on. Tests widen it to
// provoke patterns without an entry.
var maxPieceAngle = math.Pi / 2

// thirds maps the closer/further pattern of a split into three
// sub-segments to the sub-segments that can contain the closest approach.
//
// Bit 2 describes the first sub-segment, bit 0 the last. A set bit means
// the distance decreased across the sub-segment. Patterns without an entry
// cannot occur on a piece with at most one interior minimum.
var thirds = [8][]int{
	0b000: {0},    // further, further, further
	0b001: {0, 2}, // further, further, closer
	0b010: nil,    // further, closer, further
	0b011: {0, 2}, // further, closer, closer
	0b100: {0, 1}, // closer, further, further
	0b101: nil,    // closer, further, closer
	0b110: {1, 2}, // closer, closer, further
	0b111: {2},    // closer, closer, closer
}

// span returns the theta range of s in increasing order.
func (s ArithmeticSpiral) span() (lo, hi float64) {
	lo, hi = s.From.theta, s.To.theta
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// within reports whether q lies within tol of the spiral. It also returns
// the number of subdivision steps that were needed.
//
// An inconsistent closer/further pattern is reported as a *FitError with
// Err set to ErrUnclassifiable. Its Segment and Index are filled in by the
// caller.
func (s ArithmeticSpiral) within(q Position, tol float64) (bool, int, error) {
	switch s.kind() {
	case spiralPoint:
		return q.Distance(s.From) <= tol, 0, nil
	case spiralRadial:
		d, _ := StraightLine{From: s.From, To: s.To}.Nearest(q.Point())
		return d <= tol*tol, 0, nil
	case spiralCircle:
		lo, hi := s.span()
		return q.Distance(s.At(clamp(q.theta, lo, hi))) <= tol, 0, nil
	}

	lo, hi := s.span()
	// Two closed-form candidates: the spiral point at q's radius, and the
	// spiral point in q's direction.
	if th := s.ThetaAt(q.rho); th >= lo && th <= hi && q.Distance(s.At(th)) <= tol {
		return true, 0, nil
	}
	if q.Distance(s.At(clamp(q.theta, lo, hi))) <= tol {
		return true, 0, nil
	}

	n := int(math.Ceil((hi - lo) / maxPieceAngle))
	w := (hi - lo) / float64(n)
	var iterations int
	for i := range n {
		a := lo + float64(i)*w
		b := hi
		if i < n-1 {
			b = a + w
		}
		ok, err := s.search(q, a, b, tol, &iterations)
		if ok || err != nil {
			return ok, iterations, err
		}
		if iterations >= MaxSubdivisions {
			break
		}
	}
	return false, iterations, nil
}

type thetaRange struct {
	a, b float64
}

// search looks for a point of the spiral between thetas a and b that is
// within tol of q, by repeatedly splitting the range into thirds.
func (s ArithmeticSpiral) search(q Position, a, b, tol float64, iterations *int) (bool, error) {
	stack := []thetaRange{{a, b}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if *iterations >= MaxSubdivisions {
			return false, nil
		}
		*iterations++

		var t, d [4]float64
		w := (r.b - r.a) / 3
		t = [4]float64{r.a, r.a + w, r.a + 2*w, r.b}
		for i, th := range t {
			d[i] = q.Distance(s.At(th))
			if d[i] <= tol {
				return true, nil
			}
		}
		if s.rejects(q, r.a, r.b, d[0], d[3], tol) {
			continue
		}
		var keep [3]bool
		anyKept := false
		for i := range 3 {
			keep[i] = !s.tooFar(t[i], t[i+1], d[i], d[i+1], tol)
			anyKept = anyKept || keep[i]
		}
		if !anyKept {
			continue
		}

		pattern := 0
		for i := range 3 {
			pattern <<= 1
			if d[i+1] < d[i] {
				pattern |= 1
			}
		}
		sub := thirds[pattern]
		if sub == nil {
			lo, hi := minmax(d[:])
			if hi-lo <= epsilon {
				// Distances that agree to within epsilon (1e-9) have no
				// reliable order. None of them is within tolerance, so
				// the range is dropped instead of reported.
				continue
			}
			return false, &FitError{Iterations: *iterations, Pattern: pattern, Err: ErrUnclassifiable}
		}
		for _, i := range sub {
			if keep[i] {
				stack = append(stack, thetaRange{t[i], t[i+1]})
			}
		}
	}
	return false, nil
}

// rejects reports whether no point of the spiral between thetas a and b can
// be within tol of q. da and db are the distances from q to the ends.
func (s ArithmeticSpiral) rejects(q Position, a, b, da, db, tol float64) bool {
	if s.tooFar(a, b, da, db, tol) {
		return true
	}

	pa, pb := s.At(a), s.At(b)
	aperture := math.Abs(normalizeAngle(q.AngleTo(pb) - q.AngleTo(pa)))
	if aperture > math.Pi/2 {
		return false
	}
	// The spiral turns monotonically, so the piece lies in the triangle
	// spanned by the chord and the tangents at its ends. That triangle is
	// no taller than the bulge.
	turn := math.Abs(s.TangentAngle(b) - s.TangentAngle(a))
	if turn >= math.Pi/2 {
		return false
	}
	c := pa.Distance(pb)
	if c < epsilon {
		return false
	}
	bulge := c / 2 * math.Tan(turn/2)
	return heronHeight(da, db, c)-bulge > tol
}

// tooFar reports whether the piece between thetas a and b is too short to
// come within tol of q. Every point of the piece is within half its length
// of one of the ends.
func (s ArithmeticSpiral) tooFar(a, b, da, db, tol float64) bool {
	piece := ArithmeticSpiral{From: s.At(a), To: s.At(b)}
	return min(da, db)-piece.Length()/2 > tol
}

// heronHeight returns the height of the triangle with sides a, b and c,
// measured from the corner opposite c.
func heronHeight(a, b, c float64) float64 {
	s := (a + b + c) / 2
	area := math.Sqrt(max(0, s*(s-a)*(s-b)*(s-c)))
	return 2 * area / c
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func minmax(vs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
