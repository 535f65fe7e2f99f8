package sandtrack

// ArbitraryLine is a precomputed sequence of positions. It has no stepping
// logic of its own: its points are returned as they are, regardless of the
// maximum point distance.
//
// ArbitraryLine is used for the results of transforming other lines, and
// for point sequences authored by hand.
type ArbitraryLine struct {
	Points []Position
}

// NewArbitraryLine returns a line through pts. The slice is not copied and
// must not be modified afterwards.
func NewArbitraryLine(pts []Position) ArbitraryLine {
	return ArbitraryLine{Points: pts}
}

func (l ArbitraryLine) Start() Position {
	if len(l.Points) == 0 {
		return Position{}
	}
	return l.Points[0]
}

func (l ArbitraryLine) End() Position {
	if len(l.Points) == 0 {
		return Position{}
	}
	return l.Points[len(l.Points)-1]
}

func (l ArbitraryLine) First(maxDist float64) Step {
	return Step{Pos: l.Start(), Last: len(l.Points) <= 1}
}

func (l ArbitraryLine) Next(prev Step, maxDist float64) Step {
	if prev.Last {
		return prev
	}
	i := int(prev.T) + 1
	return Step{Pos: l.Points[i], T: float64(i), Last: i == len(l.Points)-1}
}
