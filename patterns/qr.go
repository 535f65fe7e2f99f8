package patterns

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/skip2/go-qrcode"

	"honnef.co/go/sandtrack"
)

func init() {
	Register(Pattern{
		Name:  "qr",
		Usage: "size text",
		Help: `Draw a QR code centered on the table. Rows are traced in a
serpentine, drawing a stroke across every run of dark modules.

	size - side length of the code
	text - content of the code`,
		Run: func(d *sandtrack.Drawing, args []string) error {
			if len(args) < 2 {
				return errors.New("expected a size and a text")
			}
			size, err := strconv.ParseFloat(args[0], 64)
			if err != nil || size <= 0 {
				return fmt.Errorf("argument 1: %q is not a valid size", args[0])
			}
			return QR(d, args[1], size)
		},
	})
}

// QR draws a QR code encoding text as a square of the given size around the
// table center.
func QR(d *sandtrack.Drawing, text string, size float64) error {
	code, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return err
	}
	code.DisableBorder = true
	bitmap := code.Bitmap()
	n := len(bitmap)
	if n == 0 {
		return nil
	}

	module := size / float64(n)
	center := func(i int) float64 {
		return -size/2 + (float64(i)+0.5)*module
	}
	for y, row := range bitmap {
		cy := -center(y)
		runs := darkRuns(row)
		if y%2 == 1 {
			for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
				runs[i], runs[j] = runs[j], runs[i]
			}
		}
		for _, r := range runs {
			x0, x1 := center(r[0]), center(r[1])
			if y%2 == 1 {
				x0, x1 = x1, x0
			}
			if err := d.LineTo(sandtrack.Cartesian(x0, cy)); err != nil {
				return err
			}
			if err := d.LineTo(sandtrack.Cartesian(x1, cy)); err != nil {
				return err
			}
		}
	}
	return nil
}

// darkRuns returns the first and last column of every run of set modules.
func darkRuns(row []bool) [][2]int {
	var runs [][2]int
	start := -1
	for x, dark := range row {
		switch {
		case dark && start < 0:
			start = x
		case !dark && start >= 0:
			runs = append(runs, [2]int{start, x - 1})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(row) - 1})
	}
	return runs
}
