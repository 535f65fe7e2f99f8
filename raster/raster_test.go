package raster

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"honnef.co/go/sandtrack"
)

func TestRenderEmpty(t *testing.T) {
	img := Render(nil, DefaultOptions)
	require.Equal(t, 800, img.Bounds().Dx())
	require.Equal(t, 800, img.Bounds().Dy())
	for _, v := range img.Pix {
		require.Equal(t, DefaultOptions.Sand.Y, v)
	}
}

func TestRenderLine(t *testing.T) {
	opts := DefaultOptions
	opts.Size = 200
	opts.Width = 4
	// A radial line along the positive x axis.
	vs := []sandtrack.Position{sandtrack.Polar(0, 0), sandtrack.Polar(1, 0)}
	img := Render(vs, opts)

	// On the line, right of the center.
	require.Equal(t, opts.Trace.Y, img.GrayAt(150, 100).Y)
	// Far away from it.
	require.Equal(t, opts.Sand.Y, img.GrayAt(100, 20).Y)
	require.Equal(t, opts.Sand.Y, img.GrayAt(20, 100).Y)
}

func TestRenderCircle(t *testing.T) {
	opts := DefaultOptions
	opts.Size = 200
	opts.Width = 4
	vs := []sandtrack.Position{sandtrack.Polar(0.5, 0), sandtrack.Polar(0.5, 2*math.Pi)}
	img := Render(vs, opts)

	for _, a := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		x := int(math.Round(100 + 50*math.Cos(a)))
		y := int(math.Round(100 - 50*math.Sin(a)))
		require.Equal(t, opts.Trace.Y, img.GrayAt(x, y).Y, "angle %g", a)
	}
	require.Equal(t, opts.Sand.Y, img.GrayAt(100, 100).Y)
}

func TestWritePNG(t *testing.T) {
	opts := DefaultOptions
	opts.Size = 64
	var buf bytes.Buffer
	vs := []sandtrack.Position{sandtrack.Polar(0, 0), sandtrack.Polar(0.8, 3)}
	require.NoError(t, WritePNG(&buf, vs, opts))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 64, img.Bounds().Dx())
}

func TestRenderZeroSpacing(t *testing.T) {
	opts := DefaultOptions
	opts.Size = 100
	vs := []sandtrack.Position{sandtrack.Polar(0.2, 0), sandtrack.Polar(0.8, 3*math.Pi)}
	want := Render(vs, opts)

	opts.MaxPointDistance = 0
	require.Equal(t, want.Pix, Render(vs, opts).Pix)
	opts.MaxPointDistance = -1
	require.Equal(t, want.Pix, Render(vs, opts).Pix)
}
