package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/anomalyplay/internal/chart"
)

const (
	lineColor   = "steelblue"
	markerColor = "red"
	tickSize    = 6.0
	tickCount   = 10
)

// SceneToSVG renders the controller's current scene as a standalone SVG
// document: axes, the line path, one circle per visible point and the
// hover label when present.
func SceneToSVG(c *chart.Controller) (string, error) {
	if !c.Loaded() {
		return "", chart.ErrNotLoaded
	}
	l := c.Options().Layout
	x, y := c.Scales()
	scene := c.Scene()
	w, h := l.InnerWidth(), l.InnerHeight()

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" font-family="sans-serif" font-size="10">
<g transform="translate(%s,%s)">
`, num(l.Width), num(l.Height), num(l.Width), num(l.Height), num(l.Margin.Left), num(l.Margin.Top)))

	// bottom axis
	sb.WriteString(fmt.Sprintf(`<g class="axis axis-x" transform="translate(0,%s)" fill="none" text-anchor="middle">
<path stroke="currentColor" d="M0,%sV0H%sV%s"/>
`, num(h), num(tickSize), num(w), num(tickSize)))
	for _, tk := range x.Ticks(tickCount) {
		sb.WriteString(fmt.Sprintf(`<g class="tick" transform="translate(%s,0)"><line stroke="currentColor" y2="%s"/><text fill="currentColor" y="9" dy="0.71em">%s</text></g>
`, num(x.Map(int(tk.Value))), num(tickSize), html.EscapeString(tk.Label)))
	}
	sb.WriteString("</g>\n")

	// left axis
	sb.WriteString(fmt.Sprintf(`<g class="axis axis-y" fill="none" text-anchor="end">
<path stroke="currentColor" d="M-%s,%sH0V0H-%s"/>
`, num(tickSize), num(h), num(tickSize)))
	for _, tk := range y.Ticks(tickCount) {
		sb.WriteString(fmt.Sprintf(`<g class="tick" transform="translate(0,%s)"><line stroke="currentColor" x2="-%s"/><text fill="currentColor" x="-9" dy="0.32em">%s</text></g>
`, num(y.Map(tk.Value)), num(tickSize), html.EscapeString(tk.Label)))
	}
	sb.WriteString("</g>\n")

	if d := PathData(scene.Path); d != "" {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, lineColor, d))
	} else {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5"/>
`, lineColor))
	}

	for _, m := range scene.Markers {
		sb.WriteString(fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s" data-year="%d"/>
`, num(m.CX), num(m.CY), num(m.R), markerColor, m.Year))
	}

	if tt := scene.Tooltip; tt != nil {
		sb.WriteString(fmt.Sprintf(`<text id="%s" x="%s" y="%s" fill="currentColor">%s</text>
`, tt.ID, num(tt.X), num(tt.Y), html.EscapeString(tt.Text)))
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String(), nil
}

// PathData encodes points as SVG path data ("M x,y L x,y ..."). An empty
// path yields "".
func PathData(points []chart.Point) string {
	if len(points) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range points {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString("L")
		}
		sb.WriteString(num(p.X) + "," + num(p.Y))
	}
	return sb.String()
}

// num trims trailing zeros so whole pixels print without decimals.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
