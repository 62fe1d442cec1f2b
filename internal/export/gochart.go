package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/anomalyplay/internal/chart"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewPoints is returned by GoChart when fewer than two points are
// visible; go-chart cannot draw a series from them.
var ErrTooFewPoints = errors.New("export: go-chart needs at least two visible points")

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// GoChart renders the visible points with go-chart. Axis ranges come from
// the full dataset, so frames at different playheads line up.
func GoChart(w io.Writer, c *chart.Controller, format Format) error {
	if !c.Loaded() {
		return chart.ErrNotLoaded
	}
	visible := c.Visible()
	if len(visible) < 2 {
		return ErrTooFewPoints
	}

	var provider gochart.RendererProvider
	switch format {
	case FormatSVG, "":
		provider = gochart.SVG
	case FormatPNG:
		provider = gochart.PNG
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}

	l := c.Options().Layout
	x, y := c.Scales()
	minYear, maxYear := x.Domain()
	minVal, maxVal := y.Domain()

	xs := make([]time.Time, len(visible))
	for i, p := range visible {
		xs[i] = yearTime(p.Year)
	}

	series := []gochart.Series{
		gochart.TimeSeries{
			Name:    "Mean",
			XValues: xs,
			YValues: visible.Means(),
			Style: gochart.Style{
				StrokeColor: drawing.ColorFromHex("4682b4"),
				StrokeWidth: 1.5,
				DotColor:    drawing.ColorFromHex("ff0000"),
				DotWidth:    c.Options().MarkerRadius,
			},
		},
	}
	if tt := c.Scene().Tooltip; tt != nil {
		if m, ok := c.Scene().Marker(tt.Year); ok {
			series = append(series, gochart.AnnotationSeries{
				Annotations: []gochart.Value2{{
					XValue: timeValue(yearTime(m.Year)),
					YValue: m.Mean,
					Label:  tt.Text,
				}},
			})
		}
	}

	ch := gochart.Chart{
		Width:  int(l.Width),
		Height: int(l.Height),
		Background: gochart.Style{Padding: gochart.Box{
			Top:    int(l.Margin.Top),
			Right:  int(l.Margin.Right),
			Bottom: int(l.Margin.Bottom),
			Left:   int(l.Margin.Left),
		}},
		XAxis: gochart.XAxis{
			Name:           "Year",
			ValueFormatter: gochart.TimeValueFormatterWithFormat("2006"),
			Range: &gochart.ContinuousRange{
				Min: timeValue(yearTime(minYear)),
				Max: timeValue(yearTime(maxYear)),
			},
		},
		YAxis: gochart.YAxis{
			Name:  "°C",
			Range: &gochart.ContinuousRange{Min: minVal, Max: maxVal},
		},
		Series: series,
	}
	return ch.Render(provider, w)
}

func yearTime(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// timeValue matches how go-chart places time series values on an axis.
func timeValue(t time.Time) float64 {
	return float64(t.UnixNano())
}
