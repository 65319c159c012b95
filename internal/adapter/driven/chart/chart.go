// Package chart renders the revenue charts as PNG images with go-chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// palette cycles through the series and bar colours.
var palette = []string{
	"1FB8CD", "DB4545", "2E8B57", "5D878F", "D2BA4C",
	"B4413C", "964325", "944454", "13343B", "DB4545",
}

// ErrNoData is returned when a chart has nothing to plot.
var ErrNoData = errors.New("chart has no data")

// Series is one named line of a line chart.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Bar is one labelled bar of a bar chart.
type Bar struct {
	Label string
	Value float64
}

// LineChart describes a multi-series line chart with integer x ticks.
type LineChart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// BarChart describes a single-series bar chart.
type BarChart struct {
	Title  string
	YLabel string
	Bars   []Bar
}

// RenderLine writes the line chart as a PNG to w.
func RenderLine(w io.Writer, c LineChart) error {
	if len(c.Series) == 0 {
		return ErrNoData
	}

	graph := gochart.Chart{
		Title:  c.Title,
		Width:  defaultWidth,
		Height: defaultHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:  c.XLabel,
			Ticks: integerTicks(c.Series),
		},
		YAxis: gochart.YAxis{
			Name:           c.YLabel,
			ValueFormatter: dollars,
		},
	}

	for i, s := range c.Series {
		color := drawing.ColorFromHex(palette[i%len(palette)])
		graph.Series = append(graph.Series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 3,
				DotColor:    color,
				DotWidth:    4,
			},
		})
	}
	graph.Elements = []gochart.Renderable{gochart.LegendThin(&graph)}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render line chart %q: %w", c.Title, err)
	}
	return nil
}

// RenderBars writes the bar chart as a PNG to w. Labels are rotated so long
// category names stay readable.
func RenderBars(w io.Writer, c BarChart) error {
	if len(c.Bars) == 0 {
		return ErrNoData
	}

	graph := gochart.BarChart{
		Title:    c.Title,
		Width:    defaultWidth,
		Height:   defaultHeight,
		BarWidth: 50,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 60, Bottom: 60},
		},
		XAxis: gochart.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: gochart.YAxis{
			Name:           c.YLabel,
			ValueFormatter: dollars,
			Range:          &gochart.ContinuousRange{Min: 0, Max: barCeiling(c.Bars)},
		},
	}

	for i, b := range c.Bars {
		color := drawing.ColorFromHex(palette[i%len(palette)])
		graph.Bars = append(graph.Bars, gochart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: gochart.Style{
				FillColor:   color,
				StrokeColor: color,
			},
		})
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render bar chart %q: %w", c.Title, err)
	}
	return nil
}

// WriteFile renders into path using render, creating parent directories.
func WriteFile(path string, render func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// integerTicks returns one tick per distinct x value of the first series.
func integerTicks(series []Series) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, len(series[0].X))
	for _, x := range series[0].X {
		ticks = append(ticks, gochart.Tick{Value: x, Label: strconv.FormatFloat(x, 'f', -1, 64)})
	}
	return ticks
}

// barCeiling leaves a tenth of headroom above the tallest bar.
func barCeiling(bars []Bar) float64 {
	ceiling := 0.0
	for _, b := range bars {
		ceiling = max(ceiling, b.Value)
	}
	if ceiling <= 0 {
		return 1
	}
	return ceiling * 1.1
}

func dollars(v any) string {
	if f, ok := v.(float64); ok {
		return "$" + strconv.FormatFloat(f, 'f', 0, 64)
	}
	return fmt.Sprint(v)
}
