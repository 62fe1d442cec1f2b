package chart

import (
	"fmt"

	"github.com/san-kum/anomalyplay/internal/dataset"
)

// TooltipID identifies the single hover label.
const TooltipID = "tooltip"

// Point is a path vertex in plot-area pixels.
type Point struct {
	X, Y float64
}

// Marker is the circle drawn for one visible data point.
type Marker struct {
	Year    int
	Mean    float64
	CX, CY  float64
	R       float64
	Hovered bool
}

// Tooltip is the hover label. A scene holds at most one.
type Tooltip struct {
	ID   string
	Year int
	Text string
	X, Y float64
}

// Scene is what the chart currently shows, in plot-area pixels.
type Scene struct {
	Path    []Point
	Markers []Marker
	Tooltip *Tooltip
}

func (s Scene) clone() Scene {
	out := Scene{
		Path:    append([]Point(nil), s.Path...),
		Markers: append([]Marker(nil), s.Markers...),
	}
	if s.Tooltip != nil {
		tt := *s.Tooltip
		out.Tooltip = &tt
	}
	return out
}

// Marker returns the marker for year, if visible.
func (s Scene) Marker(year int) (Marker, bool) {
	for _, m := range s.Markers {
		if m.Year == year {
			return m, true
		}
	}
	return Marker{}, false
}

// JoinStats counts the outcome of one marker reconciliation.
type JoinStats struct {
	Entered int
	Updated int
	Exited  int
}

// FormatLabel renders the hover text for a point, e.g. "2000: 0.80°C".
func FormatLabel(p dataset.DataPoint) string {
	return fmt.Sprintf("%d: %.2f°C", p.Year, p.Mean)
}
