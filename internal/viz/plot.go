package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/anomalyplay/internal/chart"
	"github.com/san-kum/anomalyplay/internal/scale"
)

const (
	gutterWidth = 7
	xTickCount  = 6
	yTickCount  = 5
)

// plotter maps plot-area pixels onto canvas sub-pixels.
type plotter struct {
	cv     *Canvas
	layout chart.Layout
}

func (p plotter) sub(pt chart.Point) (int, int) {
	cw, ch := p.cv.SubSize()
	iw, ih := p.layout.InnerWidth(), p.layout.InnerHeight()
	x, y := 0.0, 0.0
	if iw > 0 {
		x = pt.X / iw * float64(cw-1)
	}
	if ih > 0 {
		y = pt.Y / ih * float64(ch-1)
	}
	return int(math.Round(x)), int(math.Round(y))
}

// subRadius scales a marker radius so the default r=3 is one sub-pixel.
func subRadius(r float64) int {
	if n := int(math.Round(r / chart.DefaultMarkerRadius)); n > 1 {
		return n
	}
	return 1
}

// drawPlot rasterizes the path, markers and tooltip of scene, with path
// standing in for scene.Path while a transition runs.
func (p plotter) drawPlot(scene chart.Scene, path []chart.Point) {
	p.cv.Clear()
	cw, ch := p.cv.SubSize()
	p.cv.DrawLine(0, 0, 0, ch-1)
	p.cv.DrawLine(0, ch-1, cw-1, ch-1)

	for i := 1; i < len(path); i++ {
		x0, y0 := p.sub(path[i-1])
		x1, y1 := p.sub(path[i])
		p.cv.DrawLine(x0, y0, x1, y1)
	}
	if len(path) == 1 {
		x, y := p.sub(path[0])
		p.cv.Set(x, y)
	}

	for _, m := range scene.Markers {
		x, y := p.sub(chart.Point{X: m.CX, Y: m.CY})
		if m.Hovered {
			p.cv.FillCircle(x, y, subRadius(m.R))
			continue
		}
		p.cv.Mark(x, y)
	}

	if tt := scene.Tooltip; tt != nil {
		x, y := p.sub(chart.Point{X: tt.X, Y: tt.Y})
		col, row := x/2, y/4
		if over := col + len([]rune(tt.Text)) - p.cv.Width; over > 0 {
			col -= over
		}
		if col < 1 {
			col = 1
		}
		p.cv.Text(col, row, tt.Text)
	}
}

// yLabels returns one gutter string per canvas row.
func (p plotter) yLabels(y scale.Linear) []string {
	rows := make([]string, p.cv.Height)
	for _, t := range y.Ticks(yTickCount) {
		_, sy := p.sub(chart.Point{Y: y.Map(t.Value)})
		row := sy / 4
		if row < 0 || row >= len(rows) {
			continue
		}
		rows[row] = t.Label
	}
	for i, l := range rows {
		rows[i] = padLeft(l, gutterWidth-1) + " "
	}
	return rows
}

// xLabels returns the year tick line under the canvas.
func (p plotter) xLabels(x scale.Time) string {
	line := []rune(strings.Repeat(" ", p.cv.Width+gutterWidth))
	next := 0
	for _, t := range x.Ticks(xTickCount) {
		sx, _ := p.sub(chart.Point{X: x.Map(int(t.Value))})
		col := gutterWidth + sx/2 - len(t.Label)/2
		if col < next || col+len(t.Label) > len(line) {
			continue
		}
		copy(line[col:], []rune(t.Label))
		next = col + len(t.Label) + 1
	}
	return strings.TrimRight(string(line), " ")
}

// renderChart draws the controller's scene into a w×h cell block with axis
// labels. path overrides the scene path when non-nil.
func renderChart(c *chart.Controller, path []chart.Point, w, h int) string {
	cv := NewCanvas(w, h)
	p := plotter{cv: cv, layout: c.Options().Layout}
	scene := c.Scene()
	if path == nil {
		path = scene.Path
	}
	p.drawPlot(scene, path)

	x, y := c.Scales()
	axis := lipgloss.NewStyle().Foreground(CurrentTheme.Axis)
	body := cv.Render(
		lipgloss.NewStyle().Foreground(CurrentTheme.Line),
		lipgloss.NewStyle().Foreground(CurrentTheme.Marker),
		lipgloss.NewStyle().Foreground(CurrentTheme.Hover).Bold(true),
	)
	labels := p.yLabels(y)

	var b strings.Builder
	for i, row := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
		b.WriteString(axis.Render(labels[i]))
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString(axis.Render(p.xLabels(x)))
	return b.String()
}

func padLeft(s string, n int) string {
	if l := len([]rune(s)); l < n {
		return strings.Repeat(" ", n-l) + s
	}
	return s
}
