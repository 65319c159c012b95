package chart

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderLine(t *testing.T) {
	var buf bytes.Buffer

	err := RenderLine(&buf, LineChart{
		Title:  "Revenue Projection",
		XLabel: "Month",
		YLabel: "Revenue ($)",
		Series: []Series{
			{Name: "Portfolio Val", X: []float64{1, 2, 3}, Y: []float64{245, 710, 1200}},
			{Name: "Conservative", X: []float64{1, 2, 3}, Y: []float64{74, 213, 360}},
		},
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRenderBars(t *testing.T) {
	var buf bytes.Buffer

	err := RenderBars(&buf, BarChart{
		Title:  "Revenue by Category",
		YLabel: "Monthly Rev ($)",
		Bars: []Bar{
			{Label: "UI Systems", Value: 1789},
			{Label: "AI Systems", Value: 1038},
		},
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRender_NoData(t *testing.T) {
	assert.ErrorIs(t, RenderLine(io.Discard, LineChart{}), ErrNoData)
	assert.ErrorIs(t, RenderBars(io.Discard, BarChart{}), ErrNoData)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "bars.png")

	err := WriteFile(path, func(w io.Writer) error {
		return RenderBars(w, BarChart{Title: "t", Bars: []Bar{{Label: "a", Value: 1}}})
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestDollars(t *testing.T) {
	assert.Equal(t, "$1789", dollars(1788.75))
	assert.Equal(t, "x", dollars("x"))
}

func TestBarCeiling(t *testing.T) {
	assert.InDelta(t, 110.0, barCeiling([]Bar{{Value: 50}, {Value: 100}}), 1e-9)
	assert.Equal(t, 1.0, barCeiling([]Bar{{Value: 0}}))
}
