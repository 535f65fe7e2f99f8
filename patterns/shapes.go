package patterns

import (
	"errors"
	"math"

	"honnef.co/go/sandtrack"
)

func init() {
	Register(Pattern{
		Name:  "star",
		Usage: "points inner outer",
		Help: `Draw a star around the table center.

	points - number of points
	inner  - radius of the inner corners
	outer  - radius of the points`,
		Run: func(d *sandtrack.Drawing, args []string) error {
			v, err := ArgsAsFloats(args, 3, true)
			if err != nil {
				return err
			}
			return Star(d, int(v[0]), v[1], v[2])
		},
	})
	Register(Pattern{
		Name:  "rose",
		Usage: "k radius",
		Help: `Draw the rose curve ρ = radius·cos(kθ).

	k      - number of petals for odd k, half the number for even k
	radius - length of the petals`,
		Run: func(d *sandtrack.Drawing, args []string) error {
			v, err := ArgsAsFloats(args, 2, true)
			if err != nil {
				return err
			}
			return Rose(d, v[0], v[1])
		},
	})
	Register(Pattern{
		Name:  "squares",
		Usage: "count size twist",
		Help: `Draw nested squares, each turned against the previous one and
touching it with its corners.

	count - number of squares
	size  - side length of the outermost square
	twist - rotation between squares, in radians`,
		Run: func(d *sandtrack.Drawing, args []string) error {
			v, err := ArgsAsFloats(args, 3, false)
			if err != nil {
				return err
			}
			return Squares(d, int(v[0]), v[1], v[2])
		},
	})
	Register(Pattern{
		Name:  "erase",
		Usage: "pitch",
		Help: `Wipe the table with a tight spiral, outwards when starting near
the center and inwards otherwise.

	pitch - distance between neighbouring turns`,
		Run: func(d *sandtrack.Drawing, args []string) error {
			v, err := ArgsAsFloats(args, 1, true)
			if err != nil {
				return err
			}
			return Erase(d, v[0])
		},
	})
}

// Star draws a star with the given number of points, alternating between
// the outer and the inner radius, and returns to its first point.
func Star(d *sandtrack.Drawing, points int, inner, outer float64) error {
	if points < 2 {
		return errors.New("a star needs at least two points")
	}
	for i := range 2*points + 1 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pt := sandtrack.PolarPt(r, float64(i)*math.Pi/float64(points))
		if err := d.LineTo(sandtrack.Cartesian(pt.X, pt.Y)); err != nil {
			return err
		}
	}
	return nil
}

// Rose draws the rose curve ρ = radius·cos(kθ) as a single closed line.
func Rose(d *sandtrack.Drawing, k, radius float64) error {
	if !(d.MaxPointDistance() > 0) {
		return sandtrack.ErrMaxPointDistance
	}
	period := 2 * math.Pi
	if k == math.Trunc(k) && int(k)%2 != 0 {
		period = math.Pi
	}
	// |dP/dθ| ≤ radius·(|k|+1)
	n := int(math.Ceil(period * radius * (math.Abs(k) + 1) / d.MaxPointDistance()))
	pts := make([]sandtrack.Position, 0, n+1)
	var p sandtrack.Position
	for i := range n + 1 {
		th := period * float64(i) / float64(n)
		pt := sandtrack.PolarPt(radius*math.Cos(k*th), th)
		if i == 0 {
			p = sandtrack.Cartesian(pt.X, pt.Y)
		} else {
			p = p.Offset(pt.Sub(p.Point()))
		}
		pts = append(pts, p)
	}
	return d.Draw(sandtrack.NewArbitraryLine(pts))
}

// Squares draws count nested squares around the table center. Each square
// is turned by twist against the previous one and scaled so that its
// corners touch the previous square's sides.
func Squares(d *sandtrack.Drawing, count int, size, twist float64) error {
	defer d.SetTransform(d.Transform())

	t := math.Abs(math.Mod(twist, math.Pi/2))
	shrink := 1 / (math.Cos(t) + math.Sin(t))
	half := size / 2
	for i := range count {
		d.SetTransform(sandtrack.Rotate(float64(i) * twist))
		corners := []sandtrack.Position{
			sandtrack.Cartesian(half, -half),
			sandtrack.Cartesian(half, half),
			sandtrack.Cartesian(-half, half),
			sandtrack.Cartesian(-half, -half),
			sandtrack.Cartesian(half, -half),
		}
		for _, c := range corners {
			if err := d.LineTo(c); err != nil {
				return err
			}
		}
		half *= shrink
	}
	return nil
}

// Erase wipes the table with a spiral whose turns are pitch apart.
func Erase(d *sandtrack.Drawing, pitch float64) error {
	target := sandtrack.Polar(1, 0)
	if d.Position().Rho() >= 0.5 {
		target = sandtrack.Polar(0, 0)
	}
	return d.EraseTo(target, pitch)
}
