package sandtrack

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSearchStalled is reported when the search for the longest fitting
	// segment cannot make progress. It indicates a bug in the fitting
	// predicate, not a problem with the input.
	ErrSearchStalled = errors.New("sandtrack: segment search stalled")

	// ErrUnclassifiable is reported when the distances sampled along a
	// spiral form a pattern that no single closest approach can produce.
	// This usually points at duplicate or out-of-order input points.
	ErrUnclassifiable = errors.New("sandtrack: unclassifiable subdivision pattern")

	// ErrTolerance is reported for a tolerance that is not positive.
	ErrTolerance = errors.New("sandtrack: tolerance must be positive")
)

// FitError describes a failure of [Fit] and where it happened.
type FitError struct {
	// Segment is the index of the output vertex that was being extended.
	Segment int
	// Index is the index of the input point being tested.
	Index int
	// Iterations is the number of search or subdivision steps spent.
	Iterations int
	// Pattern is the closer/further pattern for ErrUnclassifiable.
	Pattern int
	Err     error
}

func (e *FitError) Error() string {
	if errors.Is(e.Err, ErrUnclassifiable) {
		return fmt.Sprintf("%s: segment %d, point %d, after %d iterations: pattern %03b",
			e.Err, e.Segment, e.Index, e.Iterations, e.Pattern)
	}
	return fmt.Sprintf("%s: segment %d, point %d, after %d iterations",
		e.Err, e.Segment, e.Index, e.Iterations)
}

func (e *FitError) Unwrap() error { return e.Err }

// Fit approximates the polyline through points with a chain of arithmetic
// spirals. It returns the vertices of the chain: consecutive vertices,
// joined by an [ArithmeticSpiral], pass within tolerance of every point in
// between.
//
// The chain is built greedily. From each vertex, a binary search finds the
// farthest point that can still be reached with a single spiral, and that
// point becomes the next vertex. The first and last vertices are the first
// and last points.
//
// Consecutive duplicate points are dropped. Points at the table center
// take the angle of their neighbors, as the center has no direction of its
// own. Fit returns nil for no points.
func Fit(points []Position, tolerance float64) ([]Position, error) {
	if !(tolerance > 0) {
		return nil, ErrTolerance
	}
	if len(points) == 0 {
		return nil, nil
	}
	pts, index := prepare(points)
	if len(pts) < 2 {
		return pts, nil
	}

	out := []Position{pts[0]}
	last := len(pts) - 1
	for anchor := 0; anchor < last; {
		// Neighbouring points always fit, there is nothing between them.
		highestCan, lowestCant := anchor+1, last+1
		probes := 0
		for lowestCant-highestCan > 1 {
			mid := highestCan + (lowestCant-highestCan)/2
			if mid <= highestCan || mid >= lowestCant {
				return nil, &FitError{
					Segment:    len(out) - 1,
					Index:      index[anchor],
					Iterations: probes,
					Err:        ErrSearchStalled,
				}
			}
			probes++
			ok, err := fits(pts, anchor, mid, tolerance)
			if err != nil {
				var fe *FitError
				if errors.As(err, &fe) {
					fe.Segment = len(out) - 1
					fe.Index = index[fe.Index]
				}
				return nil, err
			}
			if ok {
				highestCan = mid
			} else {
				lowestCant = mid
			}
		}
		out = append(out, pts[highestCan])
		anchor = highestCan
	}
	return out, nil
}

// fits reports whether the spiral from pts[i] to pts[j] passes within tol of
// every point in between.
func fits(pts []Position, i, j int, tol float64) (bool, error) {
	s := ArithmeticSpiral{From: pts[i], To: pts[j]}
	for k := i + 1; k < j; k++ {
		ok, _, err := s.within(pts[k], tol)
		if err != nil {
			var fe *FitError
			if errors.As(err, &fe) {
				fe.Index = k
			}
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// prepare copies points, settles the angle of points at the center and
// drops consecutive duplicates. It also returns the index into points of
// every point it keeps.
func prepare(points []Position) ([]Position, []int) {
	pts := make([]Position, len(points))
	copy(pts, points)
	for i, p := range pts {
		if p.rho >= epsilon {
			continue
		}
		if th, ok := neighborTheta(pts, i); ok {
			pts[i] = Polar(0, th)
		}
	}

	out := pts[:0]
	var index []int
	for i, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
		index = append(index, i)
	}
	return out, index
}

// neighborTheta returns the theta of the nearest point after i that is not
// at the center, or failing that, of the nearest one before it.
func neighborTheta(pts []Position, i int) (float64, bool) {
	for j := i + 1; j < len(pts); j++ {
		if pts[j].rho >= epsilon {
			return pts[j].theta, true
		}
	}
	for j := i - 1; j >= 0; j-- {
		if pts[j].rho >= epsilon {
			return pts[j].theta, true
		}
	}
	return math.NaN(), false
}
