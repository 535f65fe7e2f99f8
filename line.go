package sandtrack

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// epsilon is the threshold below which angle and radius differences are
// treated as zero when classifying lines.
const epsilon = 1e-9

// Line describes a path from a start to an end position that can be
// sampled as an ordered, finite sequence of positions.
//
// Lines are stepped through one point at a time. First returns the start
// of the line, and Next returns the point following prev, at most maxDist
// away from it. When the remaining distance is smaller than a step, Next
// returns the exact end point, with Step.Last set. Calling Next on the last
// step returns it unchanged.
//
// This package includes the following lines:
//   - [StraightLine]
//   - [CircularArc]
//   - [ArithmeticSpiral]
//   - [CubicBezierCurve]
//   - [ArbitraryLine]
type Line interface {
	Start() Position
	End() Position
	First(maxDist float64) Step
	Next(prev Step, maxDist float64) Step
}

// Step is a point on a line together with the line's own parameter at that
// point.
type Step struct {
	Pos Position
	// T is the line's parameter at Pos. Its meaning depends on the kind of
	// line: a sample index, an angle, or a curve parameter.
	T float64
	// Last reports whether Pos is the end of the line.
	Last bool

	// n is the number of uniform steps for lines that precompute it.
	n int
}

var _ Line = StraightLine{}
var _ Line = CircularArc{}
var _ Line = ArithmeticSpiral{}
var _ Line = CubicBezierCurve{}
var _ Line = ArbitraryLine{}

// Positions returns an iterator over the points of l, such that
// consecutive points are at most maxDist apart. It panics if maxDist is not
// positive.
func Positions(l Line, maxDist float64) iter.Seq[Position] {
	if !(maxDist > 0) {
		panic(fmt.Sprintf("sandtrack: maximum point distance must be positive, got %v", maxDist))
	}
	return func(yield func(Position) bool) {
		s := l.First(maxDist)
		if !yield(s.Pos) {
			return
		}
		for !s.Last {
			s = l.Next(s, maxDist)
			if !yield(s.Pos) {
				return
			}
		}
	}
}

// Points samples l such that consecutive points are at most maxDist apart.
// The first point is l's start and the last point is l's end.
func Points(l Line, maxDist float64) []Position {
	return slices.Collect(Positions(l, maxDist))
}

// segmentCount returns the number of equal steps of at most maxDist needed
// to cover length.
func segmentCount(length, maxDist float64) int {
	if !(length > 0) || math.IsInf(length, 0) {
		return 1
	}
	return max(1, int(math.Ceil(length/maxDist)))
}
