package patterns

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/nfnt/resize"

	"honnef.co/go/sandtrack"
)

func init() {
	Register(Pattern{
		Name:  "image",
		Usage: "path turns amplitude",
		Help: `Draw a picture as a spiral from the center to the rim. The
spiral wobbles where the picture is dark, so that dark areas plough more
sand.

	path      - PNG or JPEG file
	turns     - number of revolutions
	amplitude - wobble at full darkness, relative to the turn spacing`,
		Run: func(d *sandtrack.Drawing, args []string) error {
			if len(args) < 3 {
				return errors.New("expected a path, turns and amplitude")
			}
			v, err := ArgsAsFloats(args[1:], 2, true)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			img, _, err := image.Decode(f)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}
			return ImageSpiral(d, img, v[0], v[1])
		},
	})
}

// imageGrid is the resolution the picture is resampled to. Finer detail
// can't be resolved by turns that are at least a ball width apart.
const imageGrid = 128

// ImageSpiral draws img as a spiral with the given number of turns. The
// picture is fitted into the table's unit disk. Dark areas make the
// spiral oscillate radially with up to amplitude times the turn spacing.
func ImageSpiral(d *sandtrack.Drawing, img image.Image, turns, amplitude float64) error {
	if !(turns > 0) {
		return errors.New("turns must be positive")
	}
	if !(d.MaxPointDistance() > 0) {
		return sandtrack.ErrMaxPointDistance
	}
	small := resize.Resize(imageGrid, imageGrid, img, resize.Lanczos3)
	b := small.Bounds()
	darkness := func(pt sandtrack.Point) float64 {
		px := int((pt.X + 1) / 2 * imageGrid)
		py := int((1 - pt.Y) / 2 * imageGrid)
		if px < 0 || py < 0 || px >= imageGrid || py >= imageGrid {
			return 0
		}
		g := color.GrayModel.Convert(small.At(b.Min.X+px, b.Min.Y+py)).(color.Gray)
		return 1 - float64(g.Y)/255
	}

	pitch := 1 / turns
	// Leave room for the wobble at the rim.
	reach := 1 - min(1, amplitude*pitch/2)
	wavelength := pitch / 2
	ds := min(d.MaxPointDistance(), wavelength/8)
	total := 2 * math.Pi * turns

	var pts []sandtrack.Position
	var phase float64
	for th := 0.0; ; {
		rho := reach * th / total
		pt := sandtrack.PolarPt(rho, th)
		// The wobble fades in over the first turn.
		w := amplitude * pitch / 2 * min(1, rho/pitch) * darkness(pt) * math.Sin(phase)
		pts = append(pts, sandtrack.Polar(max(0, min(1, rho+w)), th))
		if th >= total {
			break
		}
		step := ds / max(rho, pitch)
		th = min(total, th+step)
		phase += 2 * math.Pi * max(rho, pitch) * step / wavelength
	}
	return d.Draw(sandtrack.NewArbitraryLine(pts))
}
