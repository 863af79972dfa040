// Package render draws prepared scatter payloads to raster files.
package render

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/motifscan/gcplot/schema"
)

// Engine rasterizes a render request to the request's output path.
// Implementations are synchronous; a returned error is the engine's
// diagnostic and the caller decides whether to continue.
type Engine interface {
	Render(req *schema.RenderRequest) error
}

// Raster dimensions for plot artifacts.
const (
	defaultWidth  = 1024
	defaultHeight = 1024
)

// ChartEngine renders scatter plots with go-chart. The zero value is not
// usable; construct with NewChartEngine.
type ChartEngine struct {
	width  int
	height int
}

var _ Engine = &ChartEngine{} // Compile-time check

// NewChartEngine creates an engine producing 1024x1024 PNG output.
func NewChartEngine() *ChartEngine {
	return &ChartEngine{width: defaultWidth, height: defaultHeight}
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// Render draws the scatter body, the labels for above-threshold factors,
// the dashed threshold line and its legend, then writes the PNG.
func (e *ChartEngine) Render(req *schema.RenderRequest) error {
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "TF profiles",
			XValues: req.GCAll,
			YValues: req.ScoreAll,
			Style:   pointStyle(chart.ColorBlue),
		},
		chart.ContinuousSeries{
			Name:    req.LegendText,
			XValues: []float64{req.XMin, req.XMax},
			YValues: []float64{req.ThresholdLine, req.ThresholdLine},
			Style: chart.Style{
				StrokeColor:     chart.ColorRed,
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
	}

	if len(req.NameAbove) > 0 {
		labels := make([]chart.Value2, len(req.NameAbove))
		for i, name := range req.NameAbove {
			labels[i] = chart.Value2{
				XValue: req.GCAbove[i],
				YValue: req.ScoreAbove[i],
				Label:  name,
			}
		}
		series = append(series, chart.AnnotationSeries{Annotations: labels})
	}

	ch := chart.Chart{
		Title:      req.Title,
		Width:      e.width,
		Height:     e.height,
		Background: chart.Style{FillColor: chart.ColorWhite},
		Canvas:     chart.Style{FillColor: chart.ColorWhite},
		XAxis: chart.XAxis{
			Name:  "%GC composition",
			Range: &chart.ContinuousRange{Min: req.XMin, Max: req.XMax},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: req.YMin, Max: req.YMax},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	file, err := os.Create(req.OutputPath)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", schema.ErrIO, req.OutputPath, err)
	}
	defer func() { _ = file.Close() }()

	if err := ch.Render(chart.PNG, file); err != nil {
		return fmt.Errorf("%w: %v", schema.ErrRender, err)
	}
	return nil
}
